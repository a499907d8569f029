package commander_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/stock-sync/pkg/v1/commander"
	"github.com/MichalMitros/stock-sync/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendSyncCommand(t *testing.T) {
	tests := map[string]struct {
		marketplaces []string
		wantBody     string
		senderError  error
		wantErr      error
	}{
		"single marketplace": {
			marketplaces: []string{"ozon"},
			wantBody:     `{"marketplaces":["ozon"]}`,
		},
		"many marketplaces": {
			marketplaces: []string{"yandex", "ozon"},
			wantBody:     `{"marketplaces":["yandex","ozon"]}`,
		},
		"all marketplaces": {
			wantBody: `{}`,
		},
		"sender error": {
			marketplaces: []string{"ozon"},
			wantBody:     `{"marketplaces":["ozon"]}`,
			senderError:  assert.AnError,
			wantErr:      assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, []byte(tt.wantBody)).Return(tt.senderError)

			cmndr := commander.NewSyncCommander(sender)
			err := cmndr.SendSyncCommand(context.TODO(), tt.marketplaces...)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
