// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Javier Ortega

// Package client implements the interactive vault CLI: a small command loop
// over one VaultSession. The loop owns the terminal; all logging goes to
// the client log file, never to the screen.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/service"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/models"
)

const maskedValue = "••••••••"

// App is the interactive command loop. Reader and writer are injectable so
// tests can drive the loop without a terminal.
type App struct {
	session  *service.VaultSession
	projects store.ProjectRepository

	in  *bufio.Scanner
	out io.Writer

	logger *logger.Logger
}

func NewApp(session *service.VaultSession, projects store.ProjectRepository, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		session:  session,
		projects: projects,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
	}
}

// Run processes commands until EOF or "quit". Errors from individual
// commands are printed and the loop continues; only input failure ends it.
func (a *App) Run(ctx context.Context) error {
	has, err := a.session.HasVault(ctx)
	if err != nil {
		return fmt.Errorf("checking vault presence: %w", err)
	}
	if has {
		fmt.Fprintln(a.out, "Vault found. Type 'unlock' to open it.")
	} else {
		fmt.Fprintln(a.out, "No vault yet. Type 'create' to set a master password.")
	}

	for {
		fmt.Fprintf(a.out, "vault[%s]> ", a.session.Status())
		if !a.in.Scan() {
			return a.in.Err()
		}

		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}

		command, args := fields[0], fields[1:]
		if command == "quit" || command == "exit" {
			a.session.Lock()
			return nil
		}

		if err = a.dispatch(ctx, command, args); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "create":
		return a.createVault(ctx)
	case "unlock":
		return a.unlock(ctx)
	case "lock":
		a.session.Lock()
		fmt.Fprintln(a.out, "Vault locked.")
		return nil
	case "status":
		fmt.Fprintln(a.out, a.session.Status())
		return nil
	case "list":
		return a.list()
	case "add":
		return a.add(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "reveal":
		return a.reveal(args)
	case "types":
		a.printTypes()
		return nil
	case "projects":
		return a.listProjects(ctx)
	case "help":
		a.printHelp()
		return nil
	default:
		return fmt.Errorf("unknown command %q, type 'help'", command)
	}
}

func (a *App) createVault(ctx context.Context) error {
	password, err := a.prompt("Master password: ")
	if err != nil {
		return err
	}
	confirm, err := a.prompt("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	if err = a.session.CreateVault(ctx, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Vault created and unlocked.")
	return nil
}

func (a *App) unlock(ctx context.Context) error {
	password, err := a.prompt("Master password: ")
	if err != nil {
		return err
	}

	if err = a.session.Unlock(ctx, password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Vault unlocked, %d credential(s) loaded.\n", len(a.session.Credentials()))
	return nil
}

func (a *App) list() error {
	creds := a.session.Credentials()
	if creds == nil {
		return service.ErrVaultLocked
	}
	if len(creds) == 0 {
		fmt.Fprintln(a.out, "No credentials stored for this project.")
		return nil
	}

	for _, cred := range creds {
		value := maskedValue
		if a.session.Revealed(cred.ID) {
			value = cred.Value
		}
		fmt.Fprintf(a.out, "%c %s  [%s]  %s  %s\n",
			cred.Type.Icon(), cred.ID, cred.Type.Label(), cred.Name, value)
		if cred.Description != "" {
			fmt.Fprintf(a.out, "    %s\n", cred.Description)
		}
	}
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: add <type> <name...>")
	}

	credType := models.CredentialType(args[0])
	name := strings.Join(args[1:], " ")

	value, err := a.prompt("Value: ")
	if err != nil {
		return err
	}
	description, err := a.prompt("Description (optional): ")
	if err != nil {
		return err
	}

	cred, err := a.session.AddCredential(ctx, credType, name, value, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Stored %s as %s.\n", cred.Name, cred.ID)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <id>")
	}

	if err := a.session.DeleteCredential(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

func (a *App) reveal(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: reveal <id>")
	}

	a.session.ToggleReveal(args[0])
	if a.session.Revealed(args[0]) {
		fmt.Fprintln(a.out, "Value shown in listings.")
	} else {
		fmt.Fprintln(a.out, "Value hidden in listings.")
	}
	return nil
}

func (a *App) listProjects(ctx context.Context) error {
	projects, err := a.projects.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects.")
		return nil
	}

	for _, p := range projects {
		fmt.Fprintf(a.out, "%s  [%s]  %s\n", p.ID, p.Status, p.Name)
	}
	return nil
}

func (a *App) printTypes() {
	for _, t := range models.AllCredentialTypes {
		fmt.Fprintf(a.out, "%c %-14s %s\n", t.Icon(), t, t.Label())
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `Commands:
  create          set a master password and open the vault
  unlock          open the vault with the master password
  lock            discard all plaintext from memory
  status          show whether the vault is locked
  list            list this project's credentials (values masked)
  add <type> <name>  encrypt and store a new credential
  delete <id>     delete a credential (repeat deletes are fine)
  reveal <id>     toggle showing a value in listings
  types           list supported credential types
  projects        list dashboard projects
  quit            lock the vault and exit
`)
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}
