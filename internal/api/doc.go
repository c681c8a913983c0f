// Package api provides the HTTP client for the Upwork public REST API.
//
// Request URLs are assembled as:
//
//	{base_url}/{entry_point}{path}.{format}
//
// For example https://www.upwork.com/api/messages/v3/acme/rooms.json.
// GET parameters are sent in the query string; POST and PUT parameters are
// form encoded. Requests are signed with OAuth 1.0a when a signer is set.
package api
