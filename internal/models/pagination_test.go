package models

import "testing"

func TestNewPaginationResult(t *testing.T) {
	tests := []struct {
		name       string
		pageSize   int
		totalCount int64
		wantPages  int
	}{
		{name: "exact pages", pageSize: 20, totalCount: 40, wantPages: 2},
		{name: "partial last page", pageSize: 20, totalCount: 41, wantPages: 3},
		{name: "single short page", pageSize: 20, totalCount: 5, wantPages: 1},
		{name: "empty", pageSize: 20, totalCount: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPaginationResult(1, tt.pageSize, tt.totalCount)
			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.TotalCount != tt.totalCount {
				t.Errorf("TotalCount = %d, want %d", result.TotalCount, tt.totalCount)
			}
		})
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		wantPage int
		wantSize int
	}{
		{name: "zero values", page: 0, pageSize: 0, wantPage: 1, wantSize: DefaultPageSize},
		{name: "negative page", page: -3, pageSize: 10, wantPage: 1, wantSize: 10},
		{name: "oversized page size", page: 1, pageSize: 500, wantPage: 1, wantSize: MaxPageSize},
		{name: "valid untouched", page: 2, pageSize: 50, wantPage: 2, wantSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := tt.page, tt.pageSize
			ValidateAndSetDefaults(&page, &pageSize)
			if page != tt.wantPage || pageSize != tt.wantSize {
				t.Errorf("got page %d size %d, want page %d size %d",
					page, pageSize, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	if got := CalculateOffset(1, 20); got != 0 {
		t.Errorf("first page offset = %d, want 0", got)
	}
	if got := CalculateOffset(3, 20); got != 40 {
		t.Errorf("third page offset = %d, want 40", got)
	}
}
