// Package fintrade provides the canonical data model for the FinTrade
// terminal client: the shapes the views render, and the normalization layer
// that maps the backend's loosely-typed JSON payloads onto them.
//
// The core functionalities include:
//   - Numeric Normalization: Coercing the backend's display-formatted values
//     (currency symbols, percent signs, thousands separators) into safe,
//     always-finite numbers.
//   - Row Normalization: Mapping the several field-naming conventions the
//     backend has accumulated for a portfolio entry onto one canonical
//     record, through explicit ordered alias lists.
//   - Payload Extraction: Plucking analysis and comparison sub-sections out
//     of loosely-typed response payloads.
//
// This package serves as the foundation for the `ftc` command-line tool: the
// api, renderer and cmd packages only ever see canonical, fully-populated
// values produced here.
package fintrade
