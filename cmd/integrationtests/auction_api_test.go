package integrationtests

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"auction-front/services/auction/helpers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

// PlaceBidHandler Tests
func TestPlaceBid(t *testing.T) {
	tests := []struct {
		name        string
		vars        map[string]string
		listingID   string
		request     any
		wantStatus  int
		wantBid     string
		wantBalance string
	}{
		{
			name:        "Valid_Bid",
			listingID:   "1",
			request:     helpers.PlaceBidRequest{Amount: decimal.NewFromInt(40000)},
			wantStatus:  http.StatusCreated,
			wantBid:     "40000",
			wantBalance: "60000",
		},
		{
			name:        "Fractional_Bid",
			listingID:   "1",
			request:     []byte(`{"amount": 40000.55}`),
			wantStatus:  http.StatusCreated,
			wantBid:     "40000.55",
			wantBalance: "59999.45",
		},
		{
			name:        "Missing_Amount",
			listingID:   "1",
			request:     []byte(`{}`),
			wantStatus:  http.StatusBadRequest,
			wantBid:     "35000",
			wantBalance: "100000",
		},
		{
			name:        "Too_Low",
			listingID:   "1",
			request:     helpers.PlaceBidRequest{Amount: decimal.NewFromInt(35000)},
			wantStatus:  http.StatusConflict,
			wantBid:     "35000",
			wantBalance: "100000",
		},
		{
			name:        "Unknown_Listing",
			listingID:   "99",
			request:     helpers.PlaceBidRequest{Amount: decimal.NewFromInt(10)},
			wantStatus:  http.StatusNotFound,
			wantBalance: "100000",
		},
		{
			name:        "Invalid_JSON",
			listingID:   "1",
			request:     []byte("{amount: 'missing quotes'}"),
			wantStatus:  http.StatusBadRequest,
			wantBid:     "35000",
			wantBalance: "100000",
		},
		{
			name:        "Insufficient_Funds",
			vars:        map[string]string{"PAYMENT_CHECK_BALANCE": "true"},
			listingID:   "2",
			request:     helpers.PlaceBidRequest{Amount: decimal.NewFromInt(1250000)},
			wantStatus:  http.StatusPaymentRequired,
			wantBid:     "1200000",
			wantBalance: "100000",
		},
		{
			name:        "Payment_Declined",
			vars:        map[string]string{"PAYMENT_FAILURE_RATE": "1"},
			listingID:   "1",
			request:     helpers.PlaceBidRequest{Amount: decimal.NewFromInt(40000)},
			wantStatus:  http.StatusPaymentRequired,
			wantBid:     "35000",
			wantBalance: "100000",
		},
		{
			name:        "Unchecked_Balance_Goes_Negative",
			listingID:   "2",
			request:     helpers.PlaceBidRequest{Amount: decimal.NewFromInt(1250000)},
			wantStatus:  http.StatusCreated,
			wantBid:     "1250000",
			wantBalance: "-1150000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := SetupTestApp(t, tt.vars)

			resp, w := ExecuteRequestAndParse(t, app.Router, http.MethodPost, "/listings/"+tt.listingID+"/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code, resp)

			if tt.wantStatus == http.StatusCreated {
				data := dataMap(t, resp)
				require.Equal(t, tt.listingID, data["listing_id"])
				require.Equal(t, "user-1", data["user_id"])
				require.Equal(t, tt.wantBid, data["amount"])
				require.NotEmpty(t, data["bid_id"])

				_, err := time.Parse(time.RFC3339, data["created_at"].(string))
				require.NoError(t, err)
			}

			resp, _ = ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/account/balance", nil)
			require.Equal(t, tt.wantBalance, dataMap(t, resp)["balance"])

			if tt.wantBid != "" {
				resp, _ = ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/listings/"+tt.listingID, nil)
				require.Equal(t, tt.wantBid, dataMap(t, resp)["current_bid"])
			}
		})
	}
}

func TestBidNotificationsAndWatchlist(t *testing.T) {
	app, _ := SetupTestApp(t, nil)
	r := app.Router

	_, w := ExecuteRequestAndParse(t, r, http.MethodPost, "/watchlist/1", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	resp, w := ExecuteRequestAndParse(t, r, http.MethodPost, "/watchlist/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, dataMap(t, resp)["added"])

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/listings/1/bids", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(36000)})
	require.Equal(t, http.StatusCreated, w.Code)

	// an own bid on a watched listing is confirmed once
	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/notifications", nil)
	data := dataMap(t, resp)
	require.Equal(t, float64(1), data["unread_count"])
	notes := data["notifications"].([]any)
	require.Len(t, notes, 1)
	require.Equal(t, "You placed a bid of $36000.00 on 2022 Tesla Model 3", notes[0].(map[string]any)["message"])

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/notifications", helpers.AddNotificationRequest{Message: "Someone liked your listing", Type: "like"})
	require.Equal(t, http.StatusCreated, w.Code)

	firstID := notes[0].(map[string]any)["id"].(string)
	resp, _ = ExecuteRequestAndParse(t, r, http.MethodPost, "/notifications/"+firstID+"/read", nil)
	require.Equal(t, float64(1), dataMap(t, resp)["unread_count"])

	resp, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/notifications/unknown/read", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), dataMap(t, resp)["unread_count"])

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodPost, "/notifications/read", nil)
	require.Equal(t, float64(1), dataMap(t, resp)["marked"])

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/profile", nil)
	profile := dataMap(t, resp)
	require.Len(t, profile["bids"], 1)
	require.Len(t, profile["watching"], 1)
	require.Equal(t, "64000", profile["balance"])

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodPost, "/watchlist/1/toggle", nil)
	require.Equal(t, false, dataMap(t, resp)["watched"])
	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/watchlist", nil)
	require.Empty(t, dataMap(t, resp)["items"])

	// watchlist entries are references and are not checked against the listings
	resp, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/watchlist/404/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, dataMap(t, resp)["watched"])
}

func TestFilterAndDateNavigation(t *testing.T) {
	app, _ := SetupTestApp(t, nil)
	r := app.Router

	resp, _ := ExecuteRequestAndParse(t, r, http.MethodGet, "/date", nil)
	date := dataMap(t, resp)
	require.Equal(t, "Today", date["label"])
	require.Equal(t, true, date["can_prev"])
	require.Equal(t, true, date["can_next"])

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/listings/visible", nil)
	visible := dataList(t, resp)
	require.Len(t, visible, 1)
	require.Equal(t, "1", visible[0].(map[string]any)["id"])

	resp, w := ExecuteRequestAndParse(t, r, http.MethodPost, "/date/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Tomorrow", dataMap(t, resp)["label"])
	require.Equal(t, false, dataMap(t, resp)["can_next"])

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/listings/visible", nil)
	require.Empty(t, dataList(t, resp))
	require.Equal(t, "no auctions found for this date", resp["message"])

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/date/next", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/date/sideways", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	for i := 0; i < 2; i++ {
		_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/date/prev", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/date/prev", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/listings/filter", helpers.FilterRequest{Category: "real_estate"})
	require.Equal(t, http.StatusOK, w.Code)
	filtered := dataList(t, resp)
	require.Len(t, filtered, 1)
	require.Equal(t, "2", filtered[0].(map[string]any)["id"])

	// the filtered view follows later bids
	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/listings/2/bids", helpers.PlaceBidRequest{Amount: decimal.NewFromInt(1300000)})
	require.Equal(t, http.StatusCreated, w.Code)
	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/listings/filtered", nil)
	require.Equal(t, "1300000", dataList(t, resp)[0].(map[string]any)["current_bid"])

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/listings/filter", helpers.FilterRequest{Category: "boats"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodDelete, "/listings/filter", nil)
	require.Len(t, dataList(t, resp), 2)
}

func TestCreateListingFlows(t *testing.T) {
	app, _ := SetupTestApp(t, nil)
	r := app.Router

	resp, w := ExecuteRequestAndParse(t, r, http.MethodGet, "/auctions/next-date", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "2024-03-10T10:00:00Z", dataMap(t, resp)["date"])

	resp, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/listings", helpers.CreateListingRequest{
		Title:        "Vintage Mustang",
		ImageURL:     "https://example.com/mustang.jpg",
		Category:     "automotive",
		StartingBid:  decimal.NewFromInt(15000),
		DurationDays: 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, resp)
	created := dataMap(t, resp)
	require.Equal(t, "2024-03-10T10:00:00Z", created["start_time"])
	require.Equal(t, "2024-03-13T10:00:00Z", created["end_time"])
	require.Equal(t, "15000", created["current_bid"])

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/listings", nil)
	all := dataList(t, resp)
	require.Len(t, all, 3)
	require.Equal(t, created["id"], all[2].(map[string]any)["id"])

	resp, _ = ExecuteRequestAndParse(t, r, http.MethodGet, "/listings/"+created["id"].(string), nil)
	detail := dataMap(t, resp)
	require.Equal(t, "3d 0h 30m 0s", detail["time_left"])
	require.Len(t, detail["gallery"], 3)

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/listings", helpers.CreateListingRequest{Title: "No photo", Category: "automotive"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartUpload(t *testing.T, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, data := range files {
		fw, err := mw.CreateFormFile(field, field+".dat")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/listings/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadListing(t *testing.T) {
	app, _ := SetupTestApp(t, nil)
	fields := map[string]string{"title": "Lake Cabin", "category": "real_estate", "starting_bid": "250000"}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, multipartUpload(t, fields, map[string][]byte{"image": pngHeader}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"image_url":"/media/`)
	require.Equal(t, 1, app.Media.Len())

	resp, _ := ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/listings", nil)
	all := dataList(t, resp)
	imageURL := all[len(all)-1].(map[string]any)["image_url"].(string)
	require.True(t, strings.HasPrefix(imageURL, "/media/"))

	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, imageURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.Equal(t, pngHeader, w.Body.Bytes())

	// text is not an image
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, multipartUpload(t, fields, map[string][]byte{"image": []byte("just some text")}))
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, multipartUpload(t, fields, nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareAndInvite(t *testing.T) {
	app, _ := SetupTestApp(t, nil)
	r := app.Router

	resp, w := ExecuteRequestAndParse(t, r, http.MethodPost, "/listings/1/share", helpers.ShareRequest{
		Platform: "twitter",
		PageURL:  "http://localhost:3000/listing/1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(dataMap(t, resp)["url"].(string), "https://twitter.com/intent/tweet?"))

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/listings/1/share", helpers.ShareRequest{
		Platform: "myspace",
		PageURL:  "http://localhost:3000/listing/1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = ExecuteRequestAndParse(t, r, http.MethodPost, "/profile/invite", helpers.InviteRequest{Email: "friend@example.com"})
	require.Equal(t, http.StatusAccepted, w.Code)
}

func TestConcurrentBidsKeepHighest(t *testing.T) {
	app, _ := SetupTestApp(t, nil)

	const bidders = 20
	var wg sync.WaitGroup
	for i := 1; i <= bidders; i++ {
		wg.Add(1)
		go func(amount int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/listings/1/bids",
				strings.NewReader(`{"amount": `+strconv.Itoa(35000+amount)+`}`))
			req.Header.Set("Content-Type", "application/json")
			app.Router.ServeHTTP(httptest.NewRecorder(), req)
		}(i)
	}
	wg.Wait()

	resp, _ := ExecuteRequestAndParse(t, app.Router, http.MethodGet, "/listings/1", nil)
	require.Equal(t, strconv.Itoa(35000+bidders), dataMap(t, resp)["current_bid"])

	// every rejected bid was refunded, so the balance matches the committed bids
	spent := decimal.Zero
	for _, b := range app.Service.BidHistory() {
		spent = spent.Add(b.Amount)
	}
	require.True(t, app.Service.Balance().Equal(decimal.NewFromInt(100000).Sub(spent)))
}
