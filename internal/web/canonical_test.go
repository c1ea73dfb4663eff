package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		path     string
		foldCase bool
		want     string
	}{
		{"/", false, "/"},
		{"//", false, "/"},
		{"/dashboard", false, "/dashboard"},
		{"/dashboard/", false, "/dashboard"},
		{"/dashboard/invoices///", false, "/dashboard/invoices"},
		{"/Dashboard/Invoices", false, "/Dashboard/Invoices"},
		{"/Dashboard/Invoices", true, "/dashboard/invoices"},
		{"/DASHBOARD/", true, "/dashboard"},
		{"/Dashboard/Invoices/ABC", true, "/dashboard/invoices/ABC"},
		{"/Dashboard/Reports", true, "/dashboard/Reports"},
		{"/dashboard/InvoicesArchive", true, "/dashboard/InvoicesArchive"},
		{"/Labs/x", true, "/Labs/x"},
		{"/checkalive", true, "/checkalive"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalPath(tt.path, tt.foldCase), "%q fold=%v", tt.path, tt.foldCase)
	}
}
