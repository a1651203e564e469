package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// apiFactory builds the API used by the operation commands. Tests replace it.
var apiFactory = func(stderr io.Writer) (*odoo.API, error) {
	return createAPI(stderr)
}

// createAPI builds an API from flags, environment and config file, in that
// order of precedence. A missing password is prompted for on a terminal.
// With --debug every operation is logged once, after it completes.
func createAPI(stderr io.Writer, extra ...odoo.Option) (*odoo.API, error) {
	config := loadConfig()

	if config.Password == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := promptPassword(stderr, "Password: ")
		if err != nil {
			return nil, err
		}

		config.Password = password
	}

	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("incomplete configuration: %w", err)
	}

	debug := viper.GetBool("debug")
	logger := &hclogAdapter{logger: newLogger(stderr, config.LogLevel, debug)}

	opts := []odoo.Option{odoo.WithLogger(logger)}

	if debug {
		opts = append(opts, odoo.WithResponseInterceptor(odoo.LoggingResponseInterceptor(logger)))
	}

	opts = append(opts, extra...)

	return odoo.NewAPI(config.BaseURL, config.DBName, odoo.ParseUID(config.UID), config.Password, opts...), nil
}

func promptPassword(w io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(w, prompt)

	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))

	_, _ = fmt.Fprintln(w)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(bytePassword), nil
}
