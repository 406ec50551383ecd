// Package domain contains the master-data entities (countries, states and
// cities), the users allowed to log in, and the audit reason that must
// accompany every change. It has no infrastructure dependencies.
package domain
