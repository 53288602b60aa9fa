package leads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	leadStore "github.com/m04kA/SMC-SiteOpsService/internal/infra/storage/lead"
	"github.com/m04kA/SMC-SiteOpsService/internal/service/leads/models"
)

type stubLogger struct{}

func (l *stubLogger) Info(format string, v ...interface{})  {}
func (l *stubLogger) Warn(format string, v ...interface{})  {}
func (l *stubLogger) Error(format string, v ...interface{}) {}

type recordingNotifier struct {
	captured []*domain.Lead
}

func (n *recordingNotifier) LeadCaptured(_ context.Context, lead *domain.Lead) {
	n.captured = append(n.captured, lead)
}

func validRequest() *models.CreateLeadRequest {
	return &models.CreateLeadRequest{
		Name:        "Анна Соколова",
		Email:       "anna@example.com",
		Phone:       "+15550110",
		ProjectType: "kitchen_remodel",
		Message:     "Хочу обсудить ремонт кухни",
		Source:      SourceForm,
	}
}

func TestService_Create(t *testing.T) {
	store := leadStore.NewMemoryStore()
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier, &stubLogger{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, SourceForm, resp.Source)
	assert.False(t, resp.CreatedAt.IsZero())

	require.Len(t, notifier.captured, 1)
	assert.Equal(t, resp.ID, notifier.captured[0].ID)
}

func TestService_Create_PhoneOnlyContact(t *testing.T) {
	store := leadStore.NewMemoryStore()
	svc := NewService(store, &recordingNotifier{}, &stubLogger{})

	req := validRequest()
	req.Email = ""

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	store := leadStore.NewMemoryStore()
	svc := NewService(store, &recordingNotifier{}, &stubLogger{})

	req := validRequest()
	req.Name = ""
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Email = ""
	req.Phone = ""
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Source = "billboard"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListNewestFirst(t *testing.T) {
	store := leadStore.NewMemoryStore()
	svc := NewService(store, &recordingNotifier{}, &stubLogger{})

	first, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Email = "boris@example.com"
	secondResp, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)

	ids := []string{list.Leads[0].ID, list.Leads[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, secondResp.ID)
}

func TestService_UpdateStatus(t *testing.T) {
	store := leadStore.NewMemoryStore()
	svc := NewService(store, &recordingNotifier{}, &stubLogger{})

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), resp.ID, "contacted"))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "contacted", list.Leads[0].Status)

	err = svc.UpdateStatus(context.Background(), resp.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), "missing", "contacted")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
