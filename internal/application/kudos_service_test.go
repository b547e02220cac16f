package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudoswall/kudos-wall-backend/internal/domain"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/valueobject"
	"github.com/kudoswall/kudos-wall-backend/internal/infrastructure/memory"
)

type kudosFixture struct {
	svc      *KudosService
	kudos    *memory.KudosRepository
	lead     *entity.User
	member   *entity.User
	category *entity.Category
}

func newKudosFixture(t *testing.T) kudosFixture {
	t.Helper()

	roles := memory.NewRoleRepository()
	users := memory.NewUserRepository(roles)
	kudos := memory.NewKudosRepository()

	category := entity.ReconstituteCategory(1, "Teamwork")
	categories := memory.NewCategoryRepository(category)

	lead := seedUser(t, users, "Lena Lead", "lead@example.com", 1)
	member := seedUser(t, users, "Mark Member", "member@example.com", 2)

	return kudosFixture{
		svc:      NewKudosService(kudos, users, categories, nil),
		kudos:    kudos,
		lead:     lead,
		member:   member,
		category: category,
	}
}

func seedUser(t *testing.T, users *memory.UserRepository, name, emailAddr string, roleID int) *entity.User {
	t.Helper()
	email, err := valueobject.NewEmail(emailAddr)
	require.NoError(t, err)
	password, err := valueobject.NewPassword("Str0ngPass!")
	require.NoError(t, err)
	u := entity.NewUser(name, email, password, roleID, true)
	require.NoError(t, users.Save(u))
	return u
}

func TestCreateKudosSuccess(t *testing.T) {
	f := newKudosFixture(t)

	res, err := f.svc.CreateKudos(context.Background(), CreateKudosInput{
		SenderID:    f.lead.ID,
		RecipientID: f.member.ID,
		CategoryID:  1,
		Message:     "Thanks for jumping on the incident with me!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Lena Lead", res.SenderName)
	assert.Equal(t, "Mark Member", res.ReceiverName)
	assert.Equal(t, "Teamwork", res.CategoryName)
	assert.False(t, res.CreatedAt.IsZero())

	stored := f.kudos.All()
	require.Len(t, stored, 1)
	assert.Equal(t, f.lead.ID, stored[0].SenderID)
	assert.Equal(t, f.member.ID, stored[0].RecipientID)
}

func TestCreateKudosUnknownSender(t *testing.T) {
	f := newKudosFixture(t)

	_, err := f.svc.CreateKudos(context.Background(), CreateKudosInput{
		SenderID:    "ghost",
		RecipientID: f.member.ID,
		CategoryID:  1,
		Message:     strings.Repeat("a", 30),
	})
	assert.ErrorIs(t, err, ErrInvalidSender)
}

func TestCreateKudosMemberCannotSend(t *testing.T) {
	f := newKudosFixture(t)

	_, err := f.svc.CreateKudos(context.Background(), CreateKudosInput{
		SenderID:    f.member.ID,
		RecipientID: f.lead.ID,
		CategoryID:  1,
		Message:     strings.Repeat("a", 30),
	})
	assert.ErrorIs(t, err, ErrSenderNotLead)
	assert.Empty(t, f.kudos.All())
}

func TestCreateKudosUnknownCategory(t *testing.T) {
	f := newKudosFixture(t)

	_, err := f.svc.CreateKudos(context.Background(), CreateKudosInput{
		SenderID:    f.lead.ID,
		RecipientID: f.member.ID,
		CategoryID:  42,
		Message:     strings.Repeat("a", 30),
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateKudosUnknownRecipient(t *testing.T) {
	f := newKudosFixture(t)

	_, err := f.svc.CreateKudos(context.Background(), CreateKudosInput{
		SenderID:    f.lead.ID,
		RecipientID: "ghost",
		CategoryID:  1,
		Message:     strings.Repeat("a", 30),
	})
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestCreateKudosMessageTooShort(t *testing.T) {
	f := newKudosFixture(t)

	_, err := f.svc.CreateKudos(context.Background(), CreateKudosInput{
		SenderID:    f.lead.ID,
		RecipientID: f.member.ID,
		CategoryID:  1,
		Message:     "too short",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Message must be at least 20 characters long")
}

func TestCreateKudosSelfRejected(t *testing.T) {
	f := newKudosFixture(t)

	_, err := f.svc.CreateKudos(context.Background(), CreateKudosInput{
		SenderID:    f.lead.ID,
		RecipientID: f.lead.ID,
		CategoryID:  1,
		Message:     strings.Repeat("a", 30),
	})
	assert.EqualError(t, err, "Cannot create kudos for yourself")
}
