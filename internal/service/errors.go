package service

import "errors"

var (
	// ErrUsernameRequired is returned by registration when the username
	// field is empty. Checked before the password field; when both are
	// empty this error wins.
	ErrUsernameRequired = errors.New("username is required")

	// ErrPasswordRequired is returned by registration when the password
	// field is empty.
	ErrPasswordRequired = errors.New("password is required")

	// ErrWrongPassword is returned by credential verification when the
	// user exists but the password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTitleRequired is returned by post create/update when the title
	// field is empty.
	ErrTitleRequired = errors.New("title is required")

	// ErrNotPostAuthor is returned by post update/delete when the post
	// exists but belongs to a different user.
	ErrNotPostAuthor = errors.New("current user is not the post author")
)
