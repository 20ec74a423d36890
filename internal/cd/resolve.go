package cd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// IdentityError reports that no passwd entry exists for the current user.
type IdentityError struct {
	Err error
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("cannot get passwd entry: %v", e.Err)
}

func (e *IdentityError) Unwrap() error { return e.Err }

// ChangeError reports a failed chdir to Path.
type ChangeError struct {
	Path string
	Err  error
}

func (e *ChangeError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("cannot change directory to '%s': %v", e.Path, cause)
}

func (e *ChangeError) Unwrap() error { return e.Err }

// Resolver turns cd targets into paths.
type Resolver struct {
	// Home returns the home directory of the current user.
	Home func() (string, error)
	// Chdir changes the working directory. Defaults to os.Chdir.
	Chdir func(dir string) error
}

// NewResolver returns a Resolver that looks the home directory up in the
// passwd database for the real user ID.
func NewResolver() *Resolver {
	return &Resolver{
		Home:  PasswdHome,
		Chdir: os.Chdir,
	}
}

// PasswdHome returns the home directory recorded for the real user ID.
func PasswdHome() (string, error) {
	u, err := user.LookupId(strconv.Itoa(unix.Getuid()))
	if err != nil {
		return "", &IdentityError{Err: err}
	}
	return u.HomeDir, nil
}

// Resolve maps a target to the directory cd should enter. An empty target and
// "~" both mean the home directory.
//
// A target starting with a double quote must also end with one; the outer
// pair is stripped and every remaining double quote is dropped. A leading ~
// is replaced by the home directory and the rest is appended as is.
func (r *Resolver) Resolve(target string) (string, error) {
	if target == "" || target == "~" {
		return r.home()
	}

	if target[0] == '"' {
		if len(target) == 1 || target[len(target)-1] != '"' {
			return "", ErrMalformed
		}
		target = strings.ReplaceAll(target[1:len(target)-1], `"`, "")
	}

	if strings.HasPrefix(target, "~") {
		home, err := r.home()
		if err != nil {
			return "", err
		}
		return home + target[1:], nil
	}
	return target, nil
}

// Change resolves target and makes it the working directory. It returns the
// path it tried to enter.
func (r *Resolver) Change(target string) (string, error) {
	dir, err := r.Resolve(target)
	if err != nil {
		return "", err
	}
	chdir := r.Chdir
	if chdir == nil {
		chdir = os.Chdir
	}
	if err := chdir(dir); err != nil {
		return dir, &ChangeError{Path: dir, Err: err}
	}
	return dir, nil
}

func (r *Resolver) home() (string, error) {
	lookup := r.Home
	if lookup == nil {
		lookup = PasswdHome
	}
	home, err := lookup()
	if err != nil {
		var ie *IdentityError
		if errors.As(err, &ie) {
			return "", err
		}
		return "", &IdentityError{Err: err}
	}
	return home, nil
}
