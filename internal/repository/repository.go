// Package repository handles all interactions with the database.
//
// It contains the SQL queries and methods to fetch, persist, and update
// contacts and subscriptions, abstracting SQL away from the service layer.
package repository
