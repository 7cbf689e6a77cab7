// Package records owns one catalog collection: an in-memory ordered sequence
// of schemaless records mirrored to durable storage after every mutation.
//
// Records are field bags (map[string]any) rather than structs because the API
// contract is shallow-merge updates with client-chosen fields. Two collections
// exist, technologies and events. The canonical technology shape is:
//
//	id, name, description, overview, detailedDescription, genre, docket,
//	innovators, advantages, applications, useCases, relatedLinks,
//	technicalSpecifications, trl, spotlight
//
// The event seed shape uses eventTitle, fieldCategory, briefDescription,
// knowMoreLink, venue, eventDate, startTime, endTime; the historical database
// schema used title/location/description/registration instead. The two shapes
// drifted independently and the store does not rename fields on either path,
// so both spellings may appear in a long-lived events file.
package records
