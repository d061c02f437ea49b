// Package billing computes rental quotes: daily amounts, degressive rates, discounts, taxes
// and the grouped material views used on bills, estimates and delivery notes.
package billing
