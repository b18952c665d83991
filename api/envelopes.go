package api

import "github.com/resalehq/resalehq/domain"

// Single-entity endpoints wrap the record in a named singular field;
// list endpoints wrap results in a named plural field. The wrapper
// leaves room for sideband metadata without breaking the shape.

type ItemResponse struct {
	Item domain.Item `json:"item"`
}

type ItemsResponse struct {
	Items []domain.Item `json:"items"`
}

type SaleResponse struct {
	Sale domain.SaleWithItems `json:"sale"`
}

type SalesResponse struct {
	Sales []domain.Sale `json:"sales"`
}

type ExpenseResponse struct {
	Expense domain.Expense `json:"expense"`
}

type ExpensesResponse struct {
	Expenses []domain.Expense `json:"expenses"`
}

type LotResponse struct {
	Lot domain.LotWithItems `json:"lot"`
}

type LotsResponse struct {
	Lots []domain.Lot `json:"lots"`
}

type DraftResponse struct {
	Draft domain.PricingDraft `json:"draft"`
}

type DraftsResponse struct {
	Drafts []domain.PricingDraft `json:"drafts"`
}

type SettingResponse struct {
	Setting domain.Setting `json:"setting"`
}

type SettingsResponse struct {
	Settings []domain.Setting `json:"settings"`
}

type FeeProfileResponse struct {
	FeeProfile domain.FeeProfile `json:"fee_profile"`
}

type FeeProfilesResponse struct {
	FeeProfiles []domain.FeeProfile `json:"fee_profiles"`
}

// NewItemsResponse wraps a list; nil marshals as [] rather than null.
func NewItemsResponse(items []domain.Item) ItemsResponse {
	if items == nil {
		items = []domain.Item{}
	}
	return ItemsResponse{Items: items}
}

// NewSalesResponse wraps a list; nil marshals as [] rather than null.
func NewSalesResponse(sales []domain.Sale) SalesResponse {
	if sales == nil {
		sales = []domain.Sale{}
	}
	return SalesResponse{Sales: sales}
}

// NewExpensesResponse wraps a list; nil marshals as [] rather than null.
func NewExpensesResponse(expenses []domain.Expense) ExpensesResponse {
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return ExpensesResponse{Expenses: expenses}
}

// NewLotsResponse wraps a list; nil marshals as [] rather than null.
func NewLotsResponse(lots []domain.Lot) LotsResponse {
	if lots == nil {
		lots = []domain.Lot{}
	}
	return LotsResponse{Lots: lots}
}

// NewDraftsResponse wraps a list; nil marshals as [] rather than null.
func NewDraftsResponse(drafts []domain.PricingDraft) DraftsResponse {
	if drafts == nil {
		drafts = []domain.PricingDraft{}
	}
	return DraftsResponse{Drafts: drafts}
}

// NewSettingsResponse wraps a list; nil marshals as [] rather than null.
func NewSettingsResponse(settings []domain.Setting) SettingsResponse {
	if settings == nil {
		settings = []domain.Setting{}
	}
	return SettingsResponse{Settings: settings}
}

// NewFeeProfilesResponse wraps a list; nil marshals as [] rather than null.
func NewFeeProfilesResponse(profiles []domain.FeeProfile) FeeProfilesResponse {
	if profiles == nil {
		profiles = []domain.FeeProfile{}
	}
	return FeeProfilesResponse{FeeProfiles: profiles}
}
