// internal/domain/address/service_test.go
package address

import (
	"testing"

	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "9876543210"

func newTestService() *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(store.NewMemoryStore(), logger)
}

func validAddress() Address {
	return Address{
		Name:         "Asha Rao",
		Phone:        "9876543210",
		AddressLine1: "221B Residency Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
		AddressType:  TypeHome,
	}
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Address)
		wantField string
	}{
		{"missing name", func(a *Address) { a.Name = " " }, "name"},
		{"missing phone", func(a *Address) { a.Phone = "" }, "phone"},
		{"short phone", func(a *Address) { a.Phone = "12345" }, "phone"},
		{"missing address line", func(a *Address) { a.AddressLine1 = "" }, "addressLine1"},
		{"missing city", func(a *Address) { a.City = "" }, "city"},
		{"missing state", func(a *Address) { a.State = "" }, "state"},
		{"missing pincode", func(a *Address) { a.Pincode = "" }, "pincode"},
		{"short pincode", func(a *Address) { a.Pincode = "5600" }, "pincode"},
		{"bad type", func(a *Address) { a.AddressType = "Gym" }, "addressType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)

			errs := addr.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}

	assert.Nil(t, validAddress().Validate())
}

func TestCreateFirstAddressBecomesDefault(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(phone, validAddress())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsDefault)

	book := svc.List(phone)
	require.Len(t, book, 1)
}

func TestCreateInvalidAddressBlocked(t *testing.T) {
	svc := newTestService()

	addr := validAddress()
	addr.Pincode = "12"
	_, err := svc.Create(phone, addr)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "pincode")
	assert.Empty(t, svc.List(phone))
}

func TestDefaultIsExclusive(t *testing.T) {
	svc := newTestService()

	first, err := svc.Create(phone, validAddress())
	require.NoError(t, err)

	second := validAddress()
	second.AddressType = TypeWork
	second.IsDefault = true
	createdSecond, err := svc.Create(phone, second)
	require.NoError(t, err)
	assert.True(t, createdSecond.IsDefault)

	for _, a := range svc.List(phone) {
		if a.ID == first.ID {
			assert.False(t, a.IsDefault)
		}
	}
}

func TestUpdate(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(phone, validAddress())
	require.NoError(t, err)

	updated := validAddress()
	updated.City = "Mysuru"
	result, err := svc.Update(phone, created.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, created.ID, result.ID)
	assert.Equal(t, "Mysuru", result.City)

	_, err = svc.Update(phone, "missing-id", validAddress())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePromotesNewDefault(t *testing.T) {
	svc := newTestService()

	first, err := svc.Create(phone, validAddress())
	require.NoError(t, err)
	second := validAddress()
	second.AddressType = TypeWork
	_, err = svc.Create(phone, second)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(phone, first.ID))

	book := svc.List(phone)
	require.Len(t, book, 1)
	assert.True(t, book[0].IsDefault)

	assert.ErrorIs(t, svc.Delete(phone, first.ID), ErrNotFound)
}
