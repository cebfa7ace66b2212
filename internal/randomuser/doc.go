// Package randomuser provides an HTTP client for randomuser.me compatible
// user listing APIs.
//
// # Overview
//
// The client issues a single GET per call with fixed query parameters (batch
// size, nationality filter and an optional seed) and decodes the JSON payload
// into strongly-typed structs. There is no paging, retry or caching: callers
// fetch once and keep the result.
//
// # Client Usage
//
//	client, err := randomuser.NewClient("https://randomuser.me/api/", randomuser.Query{
//		Results:     12,
//		Nationality: "gb",
//	})
//	if err != nil {
//		return err
//	}
//
//	users, err := client.FetchUsers(ctx)
//	if err != nil {
//		log.Printf("fetch failed: %v", err)
//	}
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json header
//   - Include User-Agent: crew/0.1 header
//   - Share a fixed 10-second client timeout that callers do not override
//
// # Error Handling
//
//   - Endpoint parse errors are returned from NewClient
//   - Network errors are wrapped as "execute request: ..."
//   - Any non-2xx status yields a *StatusError carrying the code and status text
//   - Malformed payloads are wrapped as "decode response: ..."
//
// Callers can tell a transport rejection apart with errors.As:
//
//	var statusErr *randomuser.StatusError
//	if errors.As(err, &statusErr) {
//		log.Printf("api rejected request: %d %s", statusErr.Code, statusErr.Status)
//	}
//
// # Payload Quirks
//
// location.postcode is a JSON string for some nationalities and a number for
// others; Postcode accepts both. dob.date is an ISO 8601 timestamp; ParsedDate
// returns it in UTC so the calendar date matches what the API sent.
package randomuser
