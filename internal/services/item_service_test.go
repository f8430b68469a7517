package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lostfound-app/backend/internal/dto"
	"github.com/lostfound-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupItemTest(t *testing.T) (*ItemService, *AuthService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	cfg := testConfig()
	return NewItemService(db, cfg.MaxImageBytes), NewAuthService(db, cfg), db
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	owner := registerUser(t, auth, "owner@example.com")

	req := validItemRequest()
	image := "data:image/png;base64,iVBOR"
	req.Image = &image

	created, err := items.Create(owner.ID, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := items.GetByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, req.Description, got.Description)
	assert.Equal(t, req.Category, got.Category)
	assert.Equal(t, req.Status, got.Status)
	assert.Equal(t, req.Location, got.Location)
	assert.Equal(t, "2026-08-20", got.Date.Format("2006-01-02"))
	require.NotNil(t, got.Image)
	assert.Equal(t, image, *got.Image)
	assert.Equal(t, req.ContactName, got.ContactName)
	assert.Equal(t, req.ContactPhone, got.ContactPhone)
	assert.Equal(t, req.ContactEmail, got.ContactEmail)
	assert.Equal(t, owner.ID, got.UserID)

	// Public reads carry the populated owner.
	require.NotNil(t, got.User)
	assert.Equal(t, owner.Name, got.User.Name)
}

func TestCreateNormalizesStatus(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	owner := registerUser(t, auth, "owner@example.com")

	req := validItemRequest()
	req.Status = "LOST"

	created, err := items.Create(owner.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLost, created.Status)
}

func TestCreateValidation(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	owner := registerUser(t, auth, "owner@example.com")

	bigImage := strings.Repeat("a", 2048)

	tests := []struct {
		name   string
		mutate func(*dto.ItemRequest)
	}{
		{"missing title", func(r *dto.ItemRequest) { r.Title = "" }},
		{"missing description", func(r *dto.ItemRequest) { r.Description = "" }},
		{"missing location", func(r *dto.ItemRequest) { r.Location = "" }},
		{"missing contact name", func(r *dto.ItemRequest) { r.ContactName = "" }},
		{"missing contact phone", func(r *dto.ItemRequest) { r.ContactPhone = "" }},
		{"missing contact email", func(r *dto.ItemRequest) { r.ContactEmail = "" }},
		{"unknown category", func(r *dto.ItemRequest) { r.Category = "Vehicles" }},
		{"unknown status", func(r *dto.ItemRequest) { r.Status = "misplaced" }},
		{"bad date", func(r *dto.ItemRequest) { r.Date = "20/08/2026" }},
		{"oversized image", func(r *dto.ItemRequest) { r.Image = &bigImage }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validItemRequest()
			tt.mutate(req)

			_, err := items.Create(owner.ID, req)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestUpdateOwnership(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	alice := registerUser(t, auth, "alice@example.com")
	bob := registerUser(t, auth, "bob@example.com")

	createReq := validItemRequest()
	image := "data:image/png;base64,iVBOR"
	createReq.Image = &image

	created, err := items.Create(alice.ID, createReq)
	require.NoError(t, err)

	update := validItemRequest()
	update.Title = "Brown Wallet"
	update.Status = "found"

	// Non-owner is rejected before any mutation.
	_, err = items.Update(created.ID, bob.ID, update)
	assert.ErrorIs(t, err, ErrNotOwner)

	unchanged, err := items.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Black Wallet", unchanged.Title)

	// Owner replaces every mutable field; ownership survives.
	updated, err := items.Update(created.ID, alice.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Brown Wallet", updated.Title)
	assert.Equal(t, models.StatusFound, updated.Status)
	assert.Equal(t, alice.ID, updated.UserID)

	// Full replace clears a previously set image when the body omits it.
	assert.Nil(t, updated.Image)

	_, err = items.Update(uuid.New(), alice.ID, update)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateRevalidates(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	alice := registerUser(t, auth, "alice@example.com")

	created, err := items.Create(alice.ID, validItemRequest())
	require.NoError(t, err)

	update := validItemRequest()
	update.Category = "Bicycles"

	_, err = items.Update(created.ID, alice.ID, update)
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestDeleteOwnership(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	alice := registerUser(t, auth, "alice@example.com")
	bob := registerUser(t, auth, "bob@example.com")

	created, err := items.Create(alice.ID, validItemRequest())
	require.NoError(t, err)

	err = items.Delete(created.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = items.Delete(created.ID, alice.ID)
	require.NoError(t, err)

	// Deletion is permanent.
	_, err = items.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = items.Delete(created.ID, alice.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func createItemWith(t *testing.T, items *ItemService, ownerID uuid.UUID, mutate func(*dto.ItemRequest)) *models.Item {
	t.Helper()

	req := validItemRequest()
	if mutate != nil {
		mutate(req)
	}
	item, err := items.Create(ownerID, req)
	require.NoError(t, err)

	// Keep created_at strictly increasing for ordering assertions.
	time.Sleep(5 * time.Millisecond)
	return item
}

func TestListOrderingAndStatus(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	owner := registerUser(t, auth, "owner@example.com")

	first := createItemWith(t, items, owner.ID, nil)
	second := createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Silver Watch"
		r.Status = "found"
	})
	third := createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Blue Backpack"
	})

	all, err := items.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID, "newest first")
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	lost, err := items.ListByStatus(models.StatusLost)
	require.NoError(t, err)
	require.Len(t, lost, 2)
	assert.Equal(t, third.ID, lost[0].ID)
	assert.Equal(t, first.ID, lost[1].ID)
	for _, it := range lost {
		assert.Equal(t, models.StatusLost, it.Status)
	}

	found, err := items.ListByStatus(models.StatusFound)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, second.ID, found[0].ID)
}

func TestListByOwner(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	alice := registerUser(t, auth, "alice@example.com")
	bob := registerUser(t, auth, "bob@example.com")

	mine := createItemWith(t, items, alice.ID, nil)
	createItemWith(t, items, bob.ID, func(r *dto.ItemRequest) { r.Title = "Bob's Keys" })

	got, err := items.ListByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestSearch(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	owner := registerUser(t, auth, "owner@example.com")

	byTitle := createItemWith(t, items, owner.ID, nil) // "Black Wallet"
	byDescription := createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Unknown object"
		r.Description = "found a wallet near the fountain"
		r.Status = "found"
	})
	createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Red Umbrella"
		r.Description = "left on the bus"
	})

	got, err := items.Search("WALLET")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, byDescription.ID, got[0].ID)
	assert.Equal(t, byTitle.ID, got[1].ID)

	none, err := items.Search("passport")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = items.Search("   ")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestSearchEscapesWildcards(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	owner := registerUser(t, auth, "owner@example.com")

	createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "100% cotton scarf"
	})
	createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Plain scarf"
	})

	got, err := items.Search("100%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100% cotton scarf", got[0].Title)
}

func TestFilter(t *testing.T) {
	items, auth, _ := setupItemTest(t)
	owner := registerUser(t, auth, "owner@example.com")

	match := createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Phone"
		r.Category = "Electronics"
		r.Status = "found"
	})
	createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Laptop"
		r.Category = "Electronics"
	})
	createItemWith(t, items, owner.ID, func(r *dto.ItemRequest) {
		r.Title = "Scarf"
		r.Category = "Clothing"
		r.Status = "found"
	})

	both, err := items.Filter("Electronics", "found")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, match.ID, both[0].ID)

	electronics, err := items.Filter("Electronics", "")
	require.NoError(t, err)
	assert.Len(t, electronics, 2)

	// No criteria behaves like list-all.
	everything, err := items.Filter("", "")
	require.NoError(t, err)
	all, err := items.ListAll()
	require.NoError(t, err)
	assert.Len(t, everything, len(all))
}
