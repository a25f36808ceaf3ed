// Package formatter defines how log entries are serialized into bytes.
//
// Formatter returns a []byte; WriterFormatter writes directly to an
// io.Writer. Handlers check for WriterFormatter at construction time and
// prefer it when available.
//
// The two built-in formatters are selected by name through New: "text"
// renders "<time> [LEVEL] <channel>: <message> k=v", "json" renders one
// object per line with time, level, channel, message, optional caller and
// one key per field. Both use a pooled bytes.Buffer; buffers larger than
// 64 KiB are not returned to the pool.
package formatter
