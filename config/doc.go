// Package config loads the logging configuration of an application.
//
// The configuration is a YAML document. Handlers and processors are
// mappings from a name to a directive; their declaration order is kept,
// and a numeric name doubles as the priority of the entry:
//
//	name: shop
//	logDir: /var/log/shop
//	handlers:
//	  10: {type: file, options: {filename: shop.log, format: json}}
//	  console: {type: console, level: warn}
//	processors:
//	  5: {type: static, options: {fields: {env: prod}}}
//
// Variables prefixed with NLOG_ override a few top-level keys after the
// file is read. Directive options are decoded into the typed *Options
// structs with Directive.Decode.
package config
