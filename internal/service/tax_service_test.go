package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentalbilling/internal/billing"
	"rentalbilling/internal/model"
)

func newTaxService(m *serviceMocks) *taxService {
	return &taxService{taxRepo: m.taxes, eventRepo: m.events, auditRepo: m.audit, txManager: m.tx}
}

func TestCreateTax(t *testing.T) {
	testCases := []struct {
		name       string
		req        TaxRequest
		check      func(t *testing.T, stored *model.Tax, res TaxResponse)
		clearsDflt bool
	}{
		{
			name: "leaf",
			req:  TaxRequest{Name: "VAT", IsRate: true, Value: "20", IsDefault: true},
			check: func(t *testing.T, stored *model.Tax, res TaxResponse) {
				require.NotNil(t, stored.IsRate)
				assert.True(t, *stored.IsRate)
				assert.True(t, stored.Value.Valid)
				require.NotNil(t, res.Value)
				assert.Equal(t, "20", *res.Value)
				assert.Empty(t, res.Components)
			},
			clearsDflt: true,
		},
		{
			name: "group",
			req: TaxRequest{Name: "Quebec", IsGroup: true, Components: []TaxComponentRequest{
				{Name: "GST", IsRate: true, Value: "5"},
				{Name: "QST", IsRate: true, Value: "9.975"},
			}},
			check: func(t *testing.T, stored *model.Tax, res TaxResponse) {
				assert.Nil(t, stored.IsRate)
				assert.False(t, stored.Value.Valid)
				require.Len(t, stored.Components, 2)
				assert.Equal(t, 1, stored.Components[1].Position)
				assert.Nil(t, res.Value)
				assert.Equal(t, "QST", res.Components[1].Name)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			m.expectTx()
			var stored *model.Tax
			m.taxes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tax *model.Tax) error {
				tax.ID = uuid.New()
				stored = tax
				return nil
			})
			if tc.clearsDflt {
				m.taxes.EXPECT().ClearDefault(gomock.Any(), gomock.Any()).Return(nil)
			}
			m.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil)

			res, err := newTaxService(m).Create(context.Background(), testUserID, tc.req)

			require.NoError(t, err)
			tc.check(t, stored, res)
		})
	}
}

func TestCreateTaxValidation(t *testing.T) {
	testCases := []struct {
		name string
		req  TaxRequest
	}{
		{name: "negative_value", req: TaxRequest{Name: "VAT", IsRate: true, Value: "-1"}},
		{name: "rate_above_hundred", req: TaxRequest{Name: "VAT", IsRate: true, Value: "100.01"}},
		{name: "not_a_number", req: TaxRequest{Name: "VAT", Value: "twenty"}},
		{name: "empty_group", req: TaxRequest{Name: "Group", IsGroup: true}},
		{name: "unnamed_component", req: TaxRequest{Name: "Group", IsGroup: true, Components: []TaxComponentRequest{
			{Name: " ", IsRate: true, Value: "5"},
		}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)

			_, err := newTaxService(m).Create(context.Background(), testUserID, tc.req)

			assert.ErrorIs(t, err, billing.ErrInvalidTaxValue)
		})
	}
}

func TestUpdateTaxTurnsLeafIntoGroup(t *testing.T) {
	m := newServiceMocks(t)
	m.expectTx()
	m.taxes.EXPECT().FindByID(gomock.Any(), vatID).Return(defaultVAT(), nil)
	m.taxes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil)

	res, err := newTaxService(m).Update(context.Background(), testUserID, vatID.String(), TaxRequest{
		Name: "VAT + eco", IsGroup: true, Components: []TaxComponentRequest{
			{Name: "VAT", IsRate: true, Value: "20"},
			{Name: "Eco", Value: "1.50"},
		},
	})

	require.NoError(t, err)
	assert.True(t, res.IsGroup)
	assert.False(t, res.IsDefault)
	assert.Nil(t, res.IsRate)
	assert.Len(t, res.Components, 2)
}

func TestDeleteTax(t *testing.T) {
	taxID := uuid.New()

	testCases := []struct {
		name        string
		setup       func(m *serviceMocks)
		expectedErr error
	}{
		{
			name: "deleted",
			setup: func(m *serviceMocks) {
				m.taxes.EXPECT().FindByID(gomock.Any(), taxID).Return(&model.Tax{ID: taxID, Name: "Old"}, nil)
				m.events.EXPECT().CountByTax(gomock.Any(), taxID).Return(int64(0), nil)
				m.taxes.EXPECT().Delete(gomock.Any(), taxID).Return(nil)
				m.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "default_tax",
			setup: func(m *serviceMocks) {
				m.taxes.EXPECT().FindByID(gomock.Any(), taxID).Return(&model.Tax{ID: taxID, IsDefault: true}, nil)
			},
			expectedErr: ErrIsDefault,
		},
		{
			name: "used_by_events",
			setup: func(m *serviceMocks) {
				m.taxes.EXPECT().FindByID(gomock.Any(), taxID).Return(&model.Tax{ID: taxID}, nil)
				m.events.EXPECT().CountByTax(gomock.Any(), taxID).Return(int64(1), nil)
			},
			expectedErr: ErrInUse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			m.expectTx()
			tc.setup(m)

			err := newTaxService(m).Delete(context.Background(), testUserID, taxID.String())

			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
