package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Invoices", "/dashboard/invoices/42")

	assert.Equal(t, "Invoices", ctx.PageTitle)
	assert.Equal(t, "/dashboard/invoices", ctx.ActiveSection)
	assert.Equal(t, "/dashboard/invoices/42", ctx.CurrentPath)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestNewContext_NoSection(t *testing.T) {
	ctx := NewContext("Elsewhere", "/settings")

	assert.Empty(t, ctx.ActiveSection)
	assert.False(t, ctx.IsSectionActive(HomeRoot))
}

func TestContext_WithBreadcrumbs(t *testing.T) {
	ctx := NewContext("Customers", "/dashboard/customers").WithBreadcrumbs()

	assert.Equal(t, BreadcrumbsFor("/dashboard/customers"), ctx.Breadcrumbs)
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Customers", "/dashboard/customers/7")

	assert.True(t, ctx.IsSectionActive("/dashboard/customers"))
	assert.False(t, ctx.IsSectionActive("/dashboard/customers/7"))
	assert.False(t, ctx.IsSectionActive("/dashboard/labs"))
}

func TestContext_Links(t *testing.T) {
	links := NewContext("Home", "/dashboard").Links()

	require.Len(t, links, 4)
	assert.True(t, links[0].Active)
}

func TestBreadcrumbsFor(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []BreadcrumbItem
	}{
		{
			name: "home",
			path: "/dashboard",
			want: []BreadcrumbItem{{Title: "Home", URL: "/dashboard", Active: true}},
		},
		{
			name: "section",
			path: "/dashboard/labs",
			want: []BreadcrumbItem{
				{Title: "Home", URL: "/dashboard"},
				{Title: "Labs", URL: "/dashboard/labs", Active: true},
			},
		},
		{
			name: "sub-path",
			path: "/dashboard/invoices/123/edit",
			want: []BreadcrumbItem{
				{Title: "Home", URL: "/dashboard"},
				{Title: "Invoices", URL: "/dashboard/invoices"},
				{Title: "123", URL: "/dashboard/invoices/123"},
				{Title: "edit", URL: "/dashboard/invoices/123/edit", Active: true},
			},
		},
		{
			name: "prefix without separator stays on section",
			path: "/dashboard/invoicesarchive",
			want: []BreadcrumbItem{
				{Title: "Home", URL: "/dashboard"},
				{Title: "Invoices", URL: "/dashboard/invoices", Active: true},
			},
		},
		{
			name: "unknown path",
			path: "/elsewhere",
			want: []BreadcrumbItem{{Title: "Home", URL: "/dashboard", Active: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BreadcrumbsFor(tt.path))
		})
	}
}
