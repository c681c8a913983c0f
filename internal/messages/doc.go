// Package messages routes Upwork Message Center operations to their REST
// endpoints.
//
// Rooms live under /messages/v3 and legacy threads under /mc/v1. Router
// methods only build the path and parameters; transport, signing and retries
// belong to the Requester (normally *api.Client).
package messages
