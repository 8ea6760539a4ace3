// Package integrations provides HTTP clients for the remote data sources the
// sketch reads from.
//
// # Overview
//
// The only upstream today is Data Dragon (the League of Legends static data
// CDN), mirrored at ddragon.canisback.com. It has its own subpackage:
//
//   - [ddragon]: runes dataset and icon images
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality: default headers,
// status mapping to [ErrNotFound] / [ErrNetwork], and [observability.HTTPHooks]
// events for every request. There is no response caching and no retrying; a
// failed request is reported once.
//
// [ddragon]: github.com/matzehuels/runegrid/pkg/integrations/ddragon
// [observability.HTTPHooks]: github.com/matzehuels/runegrid/pkg/observability.HTTPHooks
package integrations
