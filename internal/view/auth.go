package view

import (
	"io"

	"github.com/a-h/templ"
)

// RegisterPage renders the registration form.
func RegisterPage(flash string) templ.Component {
	return layout("Register", nil, flash, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Register</h1>
<form method="post" action="/register">
<label>Name <input type="text" name="name" required></label>
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required minlength="8"></label>
<button type="submit">Sign Up</button>
</form>
`)
		return err
	})
}

// LoginPage renders the login form.
func LoginPage(flash string) templ.Component {
	return layout("Log In", nil, flash, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Log In</h1>
<form method="post" action="/login">
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Log In</button>
</form>
`)
		return err
	})
}
