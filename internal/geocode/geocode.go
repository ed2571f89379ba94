// Package geocode 封装 Nominatim 地理编码与 OSRM 路线查询
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var (
	ErrDisabled        = errors.New("geocode: client disabled")
	ErrRequestFailed   = errors.New("geocode: request failed")
	ErrInvalidResponse = errors.New("geocode: invalid response")
	ErrNoResult        = errors.New("geocode: no result")
)

// Config 地理编码客户端配置
type Config struct {
	Enabled      bool
	NominatimURL string
	OSRMURL      string
	UserAgent    string
	Timeout      time.Duration
}

// Place 地理编码结果
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	City        string  `json:"city"`
}

// RouteSummary 路线摘要
type RouteSummary struct {
	DistanceKM      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// Client 地理编码客户端
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New 创建地理编码客户端
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled 判断客户端是否可用
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.Enabled && c.cfg.NominatimURL != ""
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Province string `json:"province"`
	} `json:"address"`
}

// Search 正向地理编码，返回首个匹配结果
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")

	var results []nominatimResult
	if err := c.getJSON(ctx, c.cfg.NominatimURL+"/search?"+params.Encode(), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoResult
	}
	return toPlace(results[0])
}

// Reverse 反向地理编码
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	var result nominatimResult
	if err := c.getJSON(ctx, c.cfg.NominatimURL+"/reverse?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Lat == "" {
		return nil, ErrNoResult
	}
	return toPlace(result)
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route 查询两点间驾车路线摘要
func (c *Client) Route(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (*RouteSummary, error) {
	if c == nil || !c.cfg.Enabled || c.cfg.OSRMURL == "" {
		return nil, ErrDisabled
	}

	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.cfg.OSRMURL, fromLng, fromLat, toLng, toLat)

	var resp osrmResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		return nil, ErrNoResult
	}
	route := resp.Routes[0]
	return &RouteSummary{
		DistanceKM:      route.Distance / 1000,
		DurationMinutes: route.Duration / 60,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func toPlace(result nominatimResult) (*Place, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	lng, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Province
	}
	return &Place{
		DisplayName: result.DisplayName,
		Lat:         lat,
		Lng:         lng,
		City:        city,
	}, nil
}
