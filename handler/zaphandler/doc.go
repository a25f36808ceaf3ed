// Package zaphandler bridges nlogwire entries into go.uber.org/zap, so an
// assembled pipeline can feed an existing zap core or encoder setup.
package zaphandler
