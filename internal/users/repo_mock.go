package users

import (
	"context"
)

type repoMock struct {
	users map[string]*User
}

func NewMockUsersRepo() *repoMock {
	return &repoMock{
		users: make(map[string]*User),
	}
}

func (r *repoMock) Add(_ context.Context, user User) (*User, error) {
	if _, taken := r.users[user.Username]; taken {
		return nil, ErrUsernameTaken
	}
	r.users[user.Username] = &user
	return &user, nil
}

func (r *repoMock) GetByUsername(_ context.Context, username string) (*User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
