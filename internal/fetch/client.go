//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// POLITE HTTP: every bibliographic API has a rate policy; a politeclient refuses to break it
//

// politeclient - a rate-limited, retrying http client; one per API, shared by all goroutines that hit that API
type politeclient struct {
	hc    *http.Client
	pause time.Duration
	last  time.Time
	mtx   sync.Mutex
}

func newpoliteclient(pause time.Duration) *politeclient {
	return &politeclient{
		hc:    &http.Client{Timeout: vv.APITIMEOUT},
		pause: pause,
	}
}

// throttle - sleep until the API's politeness window has passed; safe for concurrent use
func (pc *politeclient) throttle() {
	pc.mtx.Lock()
	defer pc.mtx.Unlock()
	now := time.Now()
	if !pc.last.IsZero() {
		elapsed := now.Sub(pc.last)
		if elapsed < pc.pause {
			time.Sleep(pc.pause - elapsed)
		}
	}
	pc.last = time.Now()
}

// getbody - throttled GET with retry/backoff on 429 and 5xx; the caller owns the returned bytes
func (pc *politeclient) getbody(ctx context.Context, u string) ([]byte, error) {
	const (
		FAIL1 = "politeclient.getbody() could not build a request for %s"
		FAIL2 = "politeclient.getbody() got status %d from %s"
		RETRY = "politeclient.getbody() will retry %s in %v (attempt %d of %d)"
	)

	var lasterr error

	for attempt := 1; attempt <= vv.APIRETRIES; attempt++ {
		pc.throttle()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf(FAIL1, u)
		}
		req.Header.Set("User-Agent", useragent())

		resp, err := pc.hc.Do(req)
		if err != nil {
			lasterr = err
		} else {
			body, rderr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()

			switch {
			case resp.StatusCode == http.StatusOK && rderr == nil:
				return body, nil
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				lasterr = fmt.Errorf(FAIL2, resp.StatusCode, u)
			default:
				// 4xx other than 429: retrying will not help
				return nil, fmt.Errorf(FAIL2, resp.StatusCode, u)
			}
		}

		if attempt < vv.APIRETRIES {
			wait := vv.APIBACKOFFMIN * time.Duration(1<<(attempt-1))
			Msg.PEEK(fmt.Sprintf(RETRY, u, wait, attempt, vv.APIRETRIES))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
				// next attempt
			}
		}
	}

	return nil, lasterr
}

// getjson - getbody + unmarshal into the caller's struct
func getjson(ctx context.Context, pc *politeclient, u string, into any) error {
	body, err := pc.getbody(ctx, u)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, into)
}

// getxml - getbody + unmarshal into the caller's struct
func getxml(ctx context.Context, pc *politeclient, u string, into any) error {
	body, err := pc.getbody(ctx, u)
	if err != nil {
		return err
	}
	return xml.Unmarshal(body, into)
}

// useragent - the APIs want to know who is calling; the polite pool tier at crossref requires a mailto
func useragent() string {
	ua := fmt.Sprintf("%s/%s (%s)", vv.MYNAME, vv.VERSION, vv.PROJURL)
	if lnch.Config != nil && lnch.Config.CrossrefMailto != "" {
		ua += fmt.Sprintf(" mailto:%s", lnch.Config.CrossrefMailto)
	}
	return ua
}
