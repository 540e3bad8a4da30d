package client

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-humans/internal/adapter"
	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/internal/mock"
	"github.com/MKhiriev/go-humans/models"
)

var adminCredentials = config.ClientCredentials{Login: "admin", Password: "password"}

func newTestApp(t *testing.T, credentials config.ClientCredentials) (*App, *mock.MockHumansAPI, *bytes.Buffer) {
	t.Helper()
	api := mock.NewMockHumansAPI(gomock.NewController(t))
	out := new(bytes.Buffer)
	return NewApp(api, credentials, out, logger.Nop()), api, out
}

func expectLogin(api *mock.MockHumansAPI) *gomock.Call {
	return api.EXPECT().
		Login(gomock.Any(), models.Credentials{Username: "admin", Password: "password"}).
		Return(models.Token{SignedString: "tok", Username: "admin"}, nil)
}

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrMissingCommand},
		{name: "unknown command", args: []string{"fly"}, wantErr: ErrUnknownCommand},
		{name: "get without id", args: []string{"get"}, wantErr: ErrWrongArgCount},
		{name: "create with two args", args: []string{"create", "Alice", "30"}, wantErr: ErrWrongArgCount},
		{name: "list with extra arg", args: []string{"list", "x"}, wantErr: ErrWrongArgCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: the API must not be touched
			app, _, out := newTestApp(t, adminCredentials)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_InvalidOperands(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "non-integer id", args: []string{"get", "abc"}},
		{name: "non-integer age", args: []string{"create", "Alice", "thirty", "F"}},
		{name: "update non-integer id", args: []string{"update", "x", "Alice", "30", "F"}},
		{name: "delete non-integer id", args: []string{"delete", "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, api, _ := newTestApp(t, adminCredentials)
			expectLogin(api)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestRun_Greet(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	gomock.InOrder(
		expectLogin(api),
		api.EXPECT().Greeting(gomock.Any()).Return("Привет!", nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"greet"}))
	assert.Equal(t, "\"Привет!\"\n", out.String())
}

func TestRun_List(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	expectLogin(api)
	api.EXPECT().ListHumans(gomock.Any()).Return([]models.Human{{ID: 1, Name: "Alice", Age: 30, Sex: "F"}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.JSONEq(t, `[{"id":1,"name":"Alice","age":30,"sex":"F"}]`, out.String())
}

func TestRun_Get(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	expectLogin(api)
	api.EXPECT().GetHuman(gomock.Any(), int64(1)).Return(models.Human{ID: 1, Name: "Alice", Age: 30, Sex: "F"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"get", "1"}))
	assert.JSONEq(t, `{"id":1,"name":"Alice","age":30,"sex":"F"}`, out.String())
}

func TestRun_Create(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	input := models.NewHumanInput("Alice", 30, "F")
	expectLogin(api)
	api.EXPECT().CreateHuman(gomock.Any(), input).Return(input.ToHuman(1), nil)

	require.NoError(t, app.Run(context.Background(), []string{"create", "Alice", "30", "F"}))
	assert.JSONEq(t, `{"id":1,"name":"Alice","age":30,"sex":"F"}`, out.String())
}

func TestRun_Update(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	input := models.NewHumanInput("Bob", 26, "M")
	expectLogin(api)
	api.EXPECT().UpdateHuman(gomock.Any(), int64(2), input).Return(input.ToHuman(2), nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", "2", "Bob", "26", "M"}))
	assert.JSONEq(t, `{"id":2,"name":"Bob","age":26,"sex":"M"}`, out.String())
}

func TestRun_Delete(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	expectLogin(api)
	api.EXPECT().DeleteHuman(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", "3"}))
	assert.JSONEq(t, `{"message":"id 3 deleted"}`, out.String())
}

func TestRun_VersionSkipsLogin(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	api.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "1.0.0\n", out.String())
}

func TestRun_WithoutCredentials(t *testing.T) {
	app, api, _ := newTestApp(t, config.ClientCredentials{})

	api.EXPECT().ListHumans(gomock.Any()).Return([]models.Human{}, nil)

	assert.NoError(t, app.Run(context.Background(), []string{"list"}))
}

func TestRun_IncompleteCredentials(t *testing.T) {
	app, _, _ := newTestApp(t, config.ClientCredentials{Login: "admin"})

	err := app.Run(context.Background(), []string{"list"})

	assert.ErrorIs(t, err, ErrIncompleteLogin)
}

func TestRun_LoginFailure(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: Invalid credentials", adapter.ErrBadRequest))

	err := app.Run(context.Background(), []string{"list"})

	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Empty(t, out.String())
}

func TestRun_APIError(t *testing.T) {
	app, api, out := newTestApp(t, adminCredentials)

	expectLogin(api)
	api.EXPECT().GetHuman(gomock.Any(), int64(9)).Return(models.Human{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"get", "9"})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)

	for name := range commands {
		assert.Contains(t, buf.String(), name)
	}
}
