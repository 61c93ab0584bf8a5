// Package environment names the deployment environment a process runs in and
// carries it through context.Context.
//
// Parse turns configuration strings such as "prod" or "development" into an
// Environment. Middleware stores the value on every request context, where
// FromContext and the IsProduction, IsStaging and IsDevelopment predicates read
// it back. LoggerExtractor plugs into logger.WithContextExtractors to tag log
// records with the environment.
package environment
