// SPDX-License-Identifier: MIT
package tokenizer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Scanner functional option type.
//
// No option alters scanning semantics; they configure observation only.
type Option func(*Scanner)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(s *Scanner) { s.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(s *Scanner) { s.logger = logger } }
