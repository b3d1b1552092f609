// Package model defines the persisted domain types: contact submissions and
// newsletter subscriptions, plus the pagination shape shared by listings.
package model
