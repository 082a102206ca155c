// Package cloudlog provides a thin convenience layer over a cloud logging
// backend. A Logger fixes a log name, a monitored-resource descriptor, and a
// set of default labels, then exposes severity-named methods (Info, Error,
// Warning, ...) that all funnel into a single write path.
//
// The heavy lifting (authentication, transport, batching, retries) belongs to
// the backend client behind the Writer interface; the gcp subpackage adapts
// Google Cloud Logging to it. The wrapper itself only merges labels, builds
// an entry, and delegates.
//
// # Configuration
//
//	cloudlog:
//	  name: "request-log"
//	  project_id: "my-project"
//	  resource_type: "global"
//	  labels:
//	    env: "prod"
//
// # Usage
//
//	client, _ := gcp.NewClient(ctx, "my-project")
//	log := cloudlog.New(client.Writer(cfg), cfg)
//	log.Error(ctx, "boom", cloudlog.WithLabel("req", "42"))
package cloudlog
