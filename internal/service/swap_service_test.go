package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repository"
	"github.com/skillswap/skillswap-api/pkg/config"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

const (
	testUserAlice = "11111111-1111-4111-8111-111111111111"
	testUserBob   = "22222222-2222-4222-8222-222222222222"
	testSkillID   = "33333333-3333-4333-8333-333333333333"
	testSkillID2  = "44444444-4444-4444-8444-444444444444"
)

type mockSwapRepo struct {
	created     []*models.SwapRequest
	createErr   error
	updated     *models.SwapRequest
	updateErr   error
	sent        []dto.SwapItem
	received    []dto.SwapItem
	listCalls   int
	updateCalls int
}

func (m *mockSwapRepo) Create(_ context.Context, request *models.SwapRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	request.ID = "r-" + request.RequestedSkillID[:8]
	request.Status = models.SwapStatusPending
	m.created = append(m.created, request)
	return nil
}

func (m *mockSwapRepo) UpdateStatusForRecipient(_ context.Context, requestID, recipientID, status string) (*models.SwapRequest, error) {
	m.updateCalls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	out := *m.updated
	out.ID = requestID
	out.ToUserID = recipientID
	out.Status = status
	return &out, nil
}

func (m *mockSwapRepo) ListSent(_ context.Context, _ string) ([]dto.SwapItem, error) {
	m.listCalls++
	return m.sent, nil
}

func (m *mockSwapRepo) ListReceived(_ context.Context, _ string) ([]dto.SwapItem, error) {
	m.listCalls++
	return m.received, nil
}

type mockUserResolver struct {
	exists map[string]bool
}

func (m *mockUserResolver) ExistsByID(_ context.Context, id string) (bool, error) {
	return m.exists[id], nil
}

type mockSkillResolver struct {
	skills map[string]*models.Skill
}

func (m *mockSkillResolver) FindSkillByID(_ context.Context, id string) (*models.Skill, error) {
	skill, ok := m.skills[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return skill, nil
}

func newSwapServiceForTest(repo *mockSwapRepo, policy config.SwapConfig) *SwapService {
	users := &mockUserResolver{exists: map[string]bool{testUserAlice: true, testUserBob: true}}
	catalog := &mockSkillResolver{skills: map[string]*models.Skill{
		testSkillID:  {ID: testSkillID, Name: "Python"},
		testSkillID2: {ID: testSkillID2, Name: "Guitar"},
	}}
	return NewSwapService(repo, users, catalog, nil, nil, policy)
}

func TestSwapServiceCreate(t *testing.T) {
	repo := &mockSwapRepo{}
	svc := newSwapServiceForTest(repo, config.SwapConfig{})

	request, err := svc.Create(context.Background(), testUserAlice, dto.CreateSwapRequest{
		ToUserID:         testUserBob,
		RequestedSkillID: testSkillID,
		OfferedSkillID:   testSkillID2,
		Message:          "  trade? ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, request.Status)
	assert.Equal(t, testUserAlice, request.FromUserID)
	assert.Equal(t, "trade?", request.Message)
	require.NotNil(t, request.OfferedSkillID)
	assert.Equal(t, testSkillID2, *request.OfferedSkillID)
}

func TestSwapServiceCreateInvalidPayload(t *testing.T) {
	svc := newSwapServiceForTest(&mockSwapRepo{}, config.SwapConfig{})

	_, err := svc.Create(context.Background(), testUserAlice, dto.CreateSwapRequest{
		ToUserID:         "not-a-uuid",
		RequestedSkillID: testSkillID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSwapServiceCreateRecipientMissing(t *testing.T) {
	repo := &mockSwapRepo{}
	svc := NewSwapService(repo, &mockUserResolver{exists: map[string]bool{}}, &mockSkillResolver{}, nil, nil, config.SwapConfig{})

	_, err := svc.Create(context.Background(), testUserAlice, dto.CreateSwapRequest{
		ToUserID:         testUserBob,
		RequestedSkillID: testSkillID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.created)
}

func TestSwapServiceCreateSkillMissing(t *testing.T) {
	repo := &mockSwapRepo{}
	users := &mockUserResolver{exists: map[string]bool{testUserBob: true}}
	svc := NewSwapService(repo, users, &mockSkillResolver{}, nil, nil, config.SwapConfig{})

	_, err := svc.Create(context.Background(), testUserAlice, dto.CreateSwapRequest{
		ToUserID:         testUserBob,
		RequestedSkillID: testSkillID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSwapServiceCreateDuplicate(t *testing.T) {
	repo := &mockSwapRepo{createErr: repository.ErrDuplicate}
	svc := newSwapServiceForTest(repo, config.SwapConfig{})

	_, err := svc.Create(context.Background(), testUserAlice, dto.CreateSwapRequest{
		ToUserID:         testUserBob,
		RequestedSkillID: testSkillID,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "request already sent", appErr.Message)
}

func TestSwapServiceCreateSelfRequest(t *testing.T) {
	repo := &mockSwapRepo{}
	svc := newSwapServiceForTest(repo, config.SwapConfig{ForbidSelfRequest: true})

	_, err := svc.Create(context.Background(), testUserAlice, dto.CreateSwapRequest{
		ToUserID:         testUserAlice,
		RequestedSkillID: testSkillID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	// The default policy keeps the historical behavior and lets it through.
	lenient := newSwapServiceForTest(&mockSwapRepo{}, config.SwapConfig{})
	_, err = lenient.Create(context.Background(), testUserAlice, dto.CreateSwapRequest{
		ToUserID:         testUserAlice,
		RequestedSkillID: testSkillID,
	})
	require.NoError(t, err)
}

func TestSwapServiceTransition(t *testing.T) {
	repo := &mockSwapRepo{updated: &models.SwapRequest{FromUserID: testUserAlice, RequestedSkillID: testSkillID}}
	svc := newSwapServiceForTest(repo, config.SwapConfig{})

	request, err := svc.Transition(context.Background(), testUserBob, "r1", "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", request.Status)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestSwapServiceTransitionEmptyStatus(t *testing.T) {
	repo := &mockSwapRepo{}
	svc := newSwapServiceForTest(repo, config.SwapConfig{})

	_, err := svc.Transition(context.Background(), testUserBob, "r1", "  ")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, repo.updateCalls)
}

func TestSwapServiceTransitionNotOwned(t *testing.T) {
	repo := &mockSwapRepo{updateErr: sql.ErrNoRows}
	svc := newSwapServiceForTest(repo, config.SwapConfig{})

	_, err := svc.Transition(context.Background(), testUserAlice, "r1", "accepted")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "request not found", appErr.Message)
}

func TestSwapServiceTransitionLenientAcceptsAnyStatus(t *testing.T) {
	repo := &mockSwapRepo{updated: &models.SwapRequest{}}
	svc := newSwapServiceForTest(repo, config.SwapConfig{})

	request, err := svc.Transition(context.Background(), testUserBob, "r1", "bogus")
	require.NoError(t, err)
	assert.Equal(t, "bogus", request.Status)
}

func TestSwapServiceTransitionStrict(t *testing.T) {
	repo := &mockSwapRepo{updated: &models.SwapRequest{}}
	svc := newSwapServiceForTest(repo, config.SwapConfig{StrictTransitions: true})

	for _, status := range []string{"bogus", models.SwapStatusPending} {
		_, err := svc.Transition(context.Background(), testUserBob, "r1", status)
		require.Error(t, err, status)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
	assert.Zero(t, repo.updateCalls)

	request, err := svc.Transition(context.Background(), testUserBob, "r1", models.SwapStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusCompleted, request.Status)
}

func TestSwapServiceListForUser(t *testing.T) {
	repo := &mockSwapRepo{
		sent: []dto.SwapItem{{ID: "r1", Counterpart: "bob", Status: "pending"}},
	}
	svc := newSwapServiceForTest(repo, config.SwapConfig{})

	lists, err := svc.ListForUser(context.Background(), testUserAlice)
	require.NoError(t, err)
	require.Len(t, lists.Sent, 1)
	assert.Equal(t, "bob", lists.Sent[0].Counterpart)
	assert.NotNil(t, lists.Received)
	assert.Empty(t, lists.Received)
	assert.Equal(t, 2, repo.listCalls)
}
