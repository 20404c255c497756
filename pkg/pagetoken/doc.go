// Package pagetoken provides opaque pagination cursors.
//
// A page token records where the last page ended: the values of the sort
// keys of the last item returned, in sort order. The client treats it as an
// opaque string and hands it back to fetch the next page.
//
// Token Format:
//
//	unencrypted: cursor.v1.Payload (protobuf wire format)
//	encrypted:   IV (16 bytes) ‖ AES-CTR(key, IV, cursor.v1.Payload)
//
// Each Entry carries a key, a direction and one typed value: string,
// number (integer or float), boolean or timestamp. A Value of any other
// Go type is rejected with ErrUnsupportedValue.
//
// Usage:
//
//	m, err := pagetoken.New(pagetoken.Config{CipherKey: key})
//	token, err := m.CreateString(pagetoken.NewPayload(
//	    pagetoken.Desc("created_at", pagetoken.Time(last.CreatedAt)),
//	    pagetoken.Asc("id", pagetoken.String(last.ID)),
//	))
//	payload, err := m.ParseString(token)
//
// AES-CTR hides token contents but does not authenticate them: a modified
// token may decode to different values. Callers must validate decoded
// entries against the query they resume. See envelope.GCM for an
// authenticated alternative.
//
// Paginate wraps the create/parse cycle around a keyset query.
package pagetoken
