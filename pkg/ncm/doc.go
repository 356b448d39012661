// Package ncm provides the public API surface for the NetCloud Manager
// (NCM) v2 client: wire types, query parameter validation, IN-filter
// chunking, call outcome classification, and the client interfaces
// implemented by internal/client.
//
// List operations accept a Params map that is validated against the
// endpoint's allow-list before any request is issued. The default record
// limit is 500; passing Limit: "all" fetches every page. Filters named
// with the "__in" marker may carry any number of values; the client
// splits them into chunks of 100 (the server's per-request maximum) and
// merges the results.
//
// Create a client with pkg/ncmclient:
//
//	client, err := ncmclient.New(&ncm.Config{
//		Keys: &ncm.APIKeys{
//			CPAPIID:   "...",
//			CPAPIKey:  "...",
//			ECMAPIID:  "...",
//			ECMAPIKey: "...",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	routers, err := client.Routers().List(ctx, ncm.Params{
//		"state": "online",
//		"limit": "all",
//	})
package ncm
