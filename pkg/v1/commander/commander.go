package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommander sends sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendSyncCommand sends command syncing provided marketplaces, all configured ones when none provided.
func (c SyncCommander) SendSyncCommand(ctx context.Context, marketplaces ...string) error {
	cmd := SyncCommand{
		Marketplaces: marketplaces,
	}

	msg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("can't send sync command: %w", err)
	}

	return nil
}
