package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-otp-keeper/internal/logger"
	"github.com/MKhiriev/go-otp-keeper/internal/mock"
	"github.com/MKhiriev/go-otp-keeper/internal/service"
	"github.com/MKhiriev/go-otp-keeper/models"
)

// spyJob записывает жизненный цикл фоновой задачи.
type spyJob struct {
	events []string
}

func (j *spyJob) Start(context.Context) { j.events = append(j.events, "start") }
func (j *spyJob) Stop()                 { j.events = append(j.events, "stop") }
func (j *spyJob) Enable()               { j.events = append(j.events, "enable") }
func (j *spyJob) Trigger()              { j.events = append(j.events, "trigger") }

type stubUI struct {
	err   error
	calls int
	job   *spyJob
}

func (u *stubUI) Run(context.Context) error {
	u.calls++
	u.job.events = append(u.job.events, "ui")
	return u.err
}

func newTestApp(t *testing.T, uiErr error, isUserQuit func(error) bool) (*App, *mock.MockBackendAdapter, *spyJob, *stubUI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	job := &spyJob{}

	services := &service.ClientServices{
		SyncAccountService: service.NewSyncAccountService(backend, job, logger.Nop()),
		SyncJob:            job,
	}
	ui := &stubUI{err: uiErr, job: job}

	app, err := NewApp(services, ui, isUserQuit, logger.Nop())
	require.NoError(t, err)
	return app, backend, job, ui
}

func TestApp_Run_ExistingCredentialEnablesSync(t *testing.T) {
	app, backend, job, ui := newTestApp(t, nil, nil)

	id := int64(1)
	backend.EXPECT().GetSyncCredential(gomock.Any()).
		Return(models.SyncCredential{ID: &id, Username: "test", URL: "https://test.com"}, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
	assert.Equal(t, []string{"start", "enable", "ui", "stop"}, job.events)
}

func TestApp_Run_NoCredential(t *testing.T) {
	app, backend, job, _ := newTestApp(t, nil, nil)

	backend.EXPECT().GetSyncCredential(gomock.Any()).
		Return(models.SyncCredential{}, errors.New("Sync Account does not exist"))

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"start", "ui", "stop"}, job.events)
}

func TestApp_Run_UserQuitIsNotAnError(t *testing.T) {
	app, backend, _, _ := newTestApp(t, ErrUserQuit, nil)
	backend.EXPECT().GetSyncCredential(gomock.Any()).Return(models.SyncCredential{}, errors.New("nope"))

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_CustomUserQuit(t *testing.T) {
	quit := errors.New("вышел из программы")
	app, backend, _, _ := newTestApp(t, quit, func(err error) bool { return errors.Is(err, quit) })
	backend.EXPECT().GetSyncCredential(gomock.Any()).Return(models.SyncCredential{}, errors.New("nope"))

	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_UIError(t *testing.T) {
	uiErr := errors.New("terminal lost")
	app, backend, job, _ := newTestApp(t, uiErr, nil)
	backend.EXPECT().GetSyncCredential(gomock.Any()).Return(models.SyncCredential{}, errors.New("nope"))

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, uiErr)
	assert.Equal(t, "stop", job.events[len(job.events)-1], "задача останавливается и при ошибке")
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, nil, logger.Nop())
	assert.Error(t, err)
}
