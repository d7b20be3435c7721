package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"
	"gorm.io/gorm"

	"madrasa_backend/internals/constants"
	database "madrasa_backend/internals/databases"
	userService "madrasa_backend/internals/features/users/user/service"
	"madrasa_backend/internals/seeds"
)

var (
	readPasswordFunc = term.ReadPassword // diganti di test

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db  *gorm.DB
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  createsuperadmin -email EMAIL -name NAME  - buat super admin (password diminta)")
	fmt.Fprintln(cli.out, "  resetpassword -email EMAIL                - ganti password user (password diminta)")
	fmt.Fprintln(cli.out, "  migrate                                   - AutoMigrate semua tabel")
	fmt.Fprintln(cli.out, "  seed -dir DIR                             - isi data contoh (users.json, academics.json)")
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password: ")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	createCmd := flag.NewFlagSet("createsuperadmin", flag.ContinueOnError)
	createEmail := createCmd.String("email", "", "Email super admin")
	createName := createCmd.String("name", "", "Nama lengkap")
	createCmd.SetOutput(cli.out)

	resetCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetEmail := resetCmd.String("email", "", "Email user. Password diminta setelahnya.")
	resetCmd.SetOutput(cli.out)

	seedCmd := flag.NewFlagSet("seed", flag.ContinueOnError)
	seedDir := seedCmd.String("dir", "internals/seeds/data", "Folder file JSON seed")
	seedCmd.SetOutput(cli.out)

	switch args[1] {
	case "createsuperadmin":
		if err := createCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *createEmail == "" || *createName == "" {
			createCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.createSuperAdmin(*createEmail, *createName, pwd)

	case "resetpassword":
		if err := resetCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetEmail == "" {
			resetCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.resetPassword(*resetEmail, pwd)

	case "migrate":
		if err := database.AutoMigrate(cli.db); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "✅ AutoMigrate selesai")
		return nil

	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if err := seeds.RunAllSeeds(cli.db, *seedDir); err != nil {
			return err
		}
		fmt.Fprintln(cli.out, "✅ Seed selesai")
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) createSuperAdmin(email, name, pwd string) error {
	if len(pwd) < 8 {
		return userService.ErrPasswordTooShort
	}
	u, err := userService.CreateUser(cli.db, userService.CreateUserInput{
		FullName: name,
		Email:    email,
		Password: pwd,
		Role:     constants.RoleSuperAdmin,
		IsActive: true,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "✅ Super admin %s dibuat (id=%s)\n", u.Email, u.ID)
	return nil
}

func (cli *commandLine) resetPassword(email, pwd string) error {
	u, err := userService.ResetPassword(cli.db, email, pwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "✅ Password %s diganti, sesi lama dicabut\n", u.Email)
	return nil
}
