// Package logger builds *slog.Logger instances for the secretfriend server.
//
// New takes functional options for format (json or text), level, output,
// static attributes and ContextExtractor callbacks. Extractors run on every
// record and pull request-scoped values, such as the request id, out of the
// context passed to the *Context logging methods:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, "secretfriend"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "friend added",
//		logger.PartyID(id),
//		logger.Friend(name),
//		logger.RosterSize(n),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Helpers taking an error or an id return an empty slog.Attr for nil input,
// which slog drops from the output.
package logger
