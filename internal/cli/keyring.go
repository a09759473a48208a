package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shreeramghimire/salmonometer/internal/keyring"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store the S3 secret access key."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored S3 secret access key (masked)."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored S3 secret access key."`
}

// KeyringSetCmd stores the S3 secret access key in the OS keyring
type KeyringSetCmd struct {
	Secret string `arg:"" help:"S3 secret access key."`
}

func (cmd *KeyringSetCmd) Run(ctx *Context) error {
	if err := keyring.SetS3Secret(strings.TrimSpace(cmd.Secret)); err != nil {
		return err
	}
	fmt.Fprintln(ctx.out(), "✓ S3 secret stored in OS keyring")
	if ctx.Config.Output.S3.AccessKeyID == "" {
		fmt.Fprintln(ctx.out(), "  Set output.s3.access_key_id in the config file to use it")
	}
	return nil
}

// KeyringGetCmd prints the stored secret with all but the last four characters masked
type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *Context) error {
	secret, err := keyring.GetS3Secret()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no S3 secret found in keyring. Use 'salmonometer keyring set' to store one")
		}
		return err
	}
	fmt.Fprintln(ctx.out(), maskSecret(secret))
	return nil
}

// KeyringDeleteCmd removes the stored secret
type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteS3Secret(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no S3 secret found in keyring")
		}
		return err
	}
	fmt.Fprintln(ctx.out(), "✓ S3 secret removed from OS keyring")
	return nil
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
