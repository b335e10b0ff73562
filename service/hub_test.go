package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	startErr error
	stopErr  error
	log      *[]string
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return f.stopErr
}

func TestHubLifecycleOrder(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "terminal", log: &log}, true))
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}, false))

	require.NoError(t, h.StartAll())
	require.NoError(t, h.StopAll())

	assert.Equal(t, []string{"start terminal", "start audio", "stop audio", "stop terminal"}, log)
}

func TestHubOptionalFailureIsSkipped(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "audio", startErr: errors.New("no device"), log: &log}, false))
	require.NoError(t, h.Register(&fakeService{name: "terminal", log: &log}, true))

	require.NoError(t, h.StartAll())
	require.NoError(t, h.StopAll())
	assert.Equal(t, []string{"start terminal", "stop terminal"}, log)
}

func TestHubRequiredFailureRollsBack(t *testing.T) {
	var log []string
	boom := errors.New("no tty")
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}, false))
	require.NoError(t, h.Register(&fakeService{name: "terminal", startErr: boom, log: &log}, true))

	err := h.StartAll()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start audio", "stop audio"}, log)
}

func TestHubDuplicateAndStopErrors(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}, true))
	assert.Error(t, h.Register(&fakeService{name: "a", log: &log}, true))

	bad := errors.New("stuck")
	require.NoError(t, h.Register(&fakeService{name: "b", stopErr: bad, log: &log}, true))
	require.NoError(t, h.StartAll())
	assert.ErrorIs(t, h.StopAll(), bad)
}
