// Package pokespeare provides the lookup core of a gateway that serves
// Shakespearean descriptions of Pokemon.
//
// A Resolver composes a description source, a translator and a bounded
// LRU cache into a single lookup operation: fetch the English description
// of a creature, rewrite it in Shakespearean English, and cache the
// combined result so repeat lookups skip both upstream calls.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/pokespeare/pokespeare"
//	    "github.com/pokespeare/pokespeare/cache"
//	    "github.com/pokespeare/pokespeare/client"
//	)
//
//	func main() {
//	    descriptions := client.NewPokeAPIClient(client.PokeAPIConfig{
//	        BaseURL: "https://pokeapi.co/api/v2",
//	    })
//	    translator := client.NewShakespeareClient(client.ShakespeareConfig{
//	        BaseURL: "https://api.funtranslations.com",
//	    })
//
//	    resolver := pokespeare.NewResolver(descriptions, translator,
//	        pokespeare.WithCache(cache.NewLRUCache(100)),
//	    )
//
//	    out := resolver.Resolve(context.Background(), "pikachu")
//	    if out.Kind == pokespeare.OutcomeFound {
//	        fmt.Println(out.Description)
//	    }
//	}
package pokespeare
