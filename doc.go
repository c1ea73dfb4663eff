// Package main provides the entry point of go-dashboard.
// It runs a fiber web server rendering the dashboard pages with a navigation
// sidebar that highlights the entry of the current route. Pages are
// server-rendered from embedded templates; htmx boosts the sidebar links so
// navigation swaps the page body without a full reload.
package main
