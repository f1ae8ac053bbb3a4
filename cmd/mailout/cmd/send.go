package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/sandren/mailout/address"
	"github.com/sandren/mailout/header"
	"github.com/sandren/mailout/message"
)

var (
	flagFrom     string
	flagReplyTo  string
	flagTo       []string
	flagCc       []string
	flagBcc      []string
	flagSubject  string
	flagBody     string
	flagBodyFile string
	flagDate     string
	flagBatch    bool

	sendCmd = &cobra.Command{
		Use:   "send",
		Short: "Compose a message from flags and dispatch it",
		RunE:  RunSend,
	}
)

func init() {
	sendCmd.Flags().StringVar(&flagFrom, "from", "", "sender address")
	sendCmd.Flags().StringVar(&flagReplyTo, "reply-to", "", "reply-to address")
	sendCmd.Flags().StringArrayVar(&flagTo, "to", nil, "recipient, as addr or 'Name <addr>' (repeatable)")
	sendCmd.Flags().StringArrayVar(&flagCc, "cc", nil, "carbon-copy recipient (repeatable)")
	sendCmd.Flags().StringArrayVar(&flagBcc, "bcc", nil, "blind-carbon-copy recipient (repeatable)")
	sendCmd.Flags().StringVar(&flagSubject, "subject", "", "message subject")
	sendCmd.Flags().StringVar(&flagBody, "body", "", "message body text")
	sendCmd.Flags().StringVar(&flagBodyFile, "body-file", "", "read the message body from this file")
	sendCmd.Flags().StringVar(&flagDate, "date", "", "stamp this date on the message (most formats accepted)")
	sendCmd.Flags().BoolVar(&flagBatch, "batch", false, "send once with all recipients on one line")

	_ = sendCmd.MarkFlagRequired("from")
	_ = sendCmd.MarkFlagRequired("to")
}

func RunSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	m := message.New()
	if err := m.SetFrom(flagFrom); err != nil {
		return err
	}
	if flagReplyTo != "" {
		if err := m.SetReplyTo(flagReplyTo); err != nil {
			return err
		}
	}

	for _, s := range flagTo {
		name, spec, err := parseRecipient(s)
		if err != nil {
			return err
		}
		ok, err := m.AddRecipient(name, spec)
		if err != nil {
			return err
		}
		if !ok {
			slog.Warn("duplicate recipient skipped", "address", spec)
		}
	}

	if len(flagCc) > 0 {
		l, err := recipientList(flagCc)
		if err != nil {
			return err
		}
		if err := m.SetCc(l); err != nil {
			return err
		}
	}
	if len(flagBcc) > 0 {
		l, err := recipientList(flagBcc)
		if err != nil {
			return err
		}
		if err := m.SetBcc(l); err != nil {
			return err
		}
	}

	m.SetSubject(flagSubject)

	body := flagBody
	if flagBodyFile != "" {
		data, err := os.ReadFile(flagBodyFile)
		if err != nil {
			return fmt.Errorf("failed to read body file: %w", err)
		}
		body = string(data)
	}
	m.SetBody(body)

	if flagDate != "" {
		t, err := header.ParseTime(flagDate)
		if err != nil {
			return err
		}
		m.StampDate(t)
	}

	t, err := cfg.buildTransport(cmd.Context())
	if err != nil {
		return err
	}

	slog.Info("dispatching message",
		"transport", cfg.Transport,
		"recipients", m.To().Len(),
		"batch", flagBatch)

	failed := m.Send(cmd.Context(), t, flagBatch)
	for _, e := range m.Errors() {
		slog.Error("delivery failure", "detail", e)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d deliveries failed", failed, m.To().Len())
	}

	slog.Info("message sent")
	return nil
}

// parseRecipient splits a "Name <addr>" or bare-address argument into its
// display name and addr-spec. The parser joins unquoted phrase atoms
// without their whitespace, so the display name is recovered from the raw
// argument rather than taken from the parse result.
func parseRecipient(s string) (name, spec string, err error) {
	mb, err := addr.ParseEmailAddress(s)
	if err != nil {
		return "", "", fmt.Errorf("cannot parse recipient %q: %w", s, err)
	}

	if open := strings.LastIndexByte(s, '<'); open >= 0 {
		name = strings.Trim(strings.TrimSpace(s[:open]), `"`)
	}
	return name, mb.Address(), nil
}

// recipientList builds an owned address.List from recipient arguments,
// dropping duplicates the way List.Add does.
func recipientList(args []string) (*address.List, error) {
	l := address.NewList()
	for _, s := range args {
		name, spec, err := parseRecipient(s)
		if err != nil {
			return nil, err
		}
		r, err := address.NewNamed(name, spec)
		if err != nil {
			return nil, err
		}
		if !l.Add(r) {
			slog.Warn("duplicate recipient skipped", "address", spec)
		}
	}
	return l, nil
}
