package demo

import (
	"strings"
	"unicode"
)

// Customer is a person with an ordered, duplicate-free list of contacts.
type Customer struct {
	ID         int64
	Name       string
	FirstNames string
	contacts   []string
}

// NewCustomer returns a customer whose name is split from a single string
// such as "Eric Meyer" or "Meyer, Eric". It reports false when the string
// holds no name.
func NewCustomer(id int64, fullName string) (*Customer, bool) {
	last, first, ok := SplitName(fullName)
	if !ok {
		return nil, false
	}
	return &Customer{ID: id, Name: last, FirstNames: first}, true
}

// SplitName splits a single-string name into last name and first names.
//
// With a comma or semicolon the last name comes first ("Meyer, Eric").
// Otherwise the final word is the last name and every word before it is a
// first name ("Eric Robert Meyer").
func SplitName(fullName string) (last, first string, ok bool) {
	if i := strings.IndexAny(fullName, ",;"); i >= 0 {
		last = trimName(fullName[:i])
		rest := fullName[i+1:]
		if j := strings.IndexAny(rest, ",;"); j >= 0 {
			rest = rest[:j]
		}
		first = trimName(rest)
	} else {
		words := strings.Fields(fullName)
		if len(words) > 0 {
			last = trimName(words[len(words)-1])
			parts := make([]string, 0, len(words)-1)
			for _, w := range words[:len(words)-1] {
				if w = trimName(w); w != "" {
					parts = append(parts, w)
				}
			}
			first = strings.Join(parts, " ")
		}
	}
	return last, first, last != ""
}

// trimName strips surrounding whitespace, quotes, commas and semicolons.
func trimName(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`"',;`, r)
	})
}

// AddContact appends contact unless it is empty after trimming or already
// present.
func (c *Customer) AddContact(contact string) *Customer {
	contact = trimName(contact)
	if contact == "" {
		return c
	}
	for _, existing := range c.contacts {
		if existing == contact {
			return c
		}
	}
	c.contacts = append(c.contacts, contact)
	return c
}

// RemoveContact removes the i-th contact. Out of range indexes are ignored.
func (c *Customer) RemoveContact(i int) *Customer {
	if i < 0 || i >= len(c.contacts) {
		return c
	}
	c.contacts = append(c.contacts[:i:i], c.contacts[i+1:]...)
	return c
}

// Contact returns the i-th contact, or "" when out of range.
func (c *Customer) Contact(i int) string {
	if i < 0 || i >= len(c.contacts) {
		return ""
	}
	return c.contacts[i]
}

// Contacts returns a copy of the contacts.
func (c *Customer) Contacts() []string {
	return append([]string(nil), c.contacts...)
}
