package sovereigntax

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// The engine never fetches prices on its own; prices are external input.
// This helper exists for the sale-preview command, which needs a spot
// price when the user does not pass one.

const coingeckoSpotURL = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd"

// FetchSpotPriceUSD returns the current BTC spot price from CoinGecko.
func FetchSpotPriceUSD(client *http.Client) (Money, error) {
	var jobj any
	if err := jwget(client, coingeckoSpotURL, &jobj); err != nil {
		return Money{}, fmt.Errorf("error fetching spot price: %w", err)
	}

	jval, err := jsonpath.Get("$.bitcoin.usd", jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error reading spot price response: %w", err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("spot price response is not a number: %v", jval)
	}
	return M(val), nil
}

// jwget fetches a URL and decodes the JSON response body into v.
func jwget(client *http.Client, addr string, v any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s: %s", addr, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
