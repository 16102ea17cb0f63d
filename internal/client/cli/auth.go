package cli

import (
	"context"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	displayName, err := GetSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if _, err := a.api.Register(ctx, email, userName, displayName, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
