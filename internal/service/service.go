// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated requests from the handlers, applies the blog rules and calls
// the repositories to read and write data.
package service
