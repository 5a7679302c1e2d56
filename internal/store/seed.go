package store

import "fmt"

// DemoNamespaces and DemoSessions populate an empty directory.
var DemoNamespaces = []struct{ Name, Description string }{
	{"lobby", "where every session starts"},
	{"arena", "competitive matches"},
	{"nether", "the other side"},
}

var DemoSessions = []struct {
	Name        string
	Namespace   string
	Active      bool
	Permissions []string
}{
	{"OverMighty", "lobby", true, []string{"*"}},
	{"Alex", "lobby", true, []string{"cmdtree.session.*"}},
	{"Notch", "arena", true, nil},
	{"Steve", "nether", false, nil},
}

// SeedDemo fills an empty directory with the demo namespaces and sessions.
// It reports false and does nothing when any namespace already exists.
func (s *Store) SeedDemo() (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM namespaces`).Scan(&n); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	for _, ns := range DemoNamespaces {
		if err := s.CreateNamespace(ns.Name, ns.Description); err != nil {
			return false, err
		}
	}

	for _, d := range DemoSessions {
		sess, err := s.CreateSession(d.Name, d.Namespace, d.Active)
		if err != nil {
			return false, err
		}
		for _, p := range d.Permissions {
			if err := s.Grant(sess.ID(), p); err != nil {
				return false, fmt.Errorf("grant %s to %s: %w", p, d.Name, err)
			}
		}
	}

	s.logger.Info("seeded demo directory")
	return true, nil
}
