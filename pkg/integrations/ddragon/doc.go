// Package ddragon provides an HTTP client for Data Dragon, the League of
// Legends static data CDN.
//
// # Usage
//
//	client := ddragon.NewClient("", "") // defaults to ddragon.canisback.com
//
//	paths, err := client.FetchRunes(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	body, err := client.FetchIcon(ctx, paths[0].Icon)
//
// # Icon URLs
//
// Icons are referenced in the dataset by relative paths and served from
// <cdn-base>/img/<icon>. References that are absolute, contain ".." or
// backslashes are rejected before any request is made.
package ddragon
