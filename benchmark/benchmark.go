package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

// Config holds the options of one benchmark run
type Config struct {
	Host         string
	NumRequests  int
	Concurrency  int
	BatchPercent int
	BatchSize    int
	MaxServices  int
	MinBasis     int64
	MaxBasis     int64
	Verbose      bool
	OutputFormat string
}

// RequestResult is the outcome of a single request
type RequestResult struct {
	Endpoint    string
	StatusCode  int
	Duration    time.Duration
	Error       error
	ContentSize int64
}

// BenchmarkResults summarises a run
type BenchmarkResults struct {
	TotalRequests      int            `json:"totalRequests"`
	SuccessfulRequests int            `json:"successfulRequests"`
	FailedRequests     int            `json:"failedRequests"`
	TotalDuration      time.Duration  `json:"-"`
	MinDuration        time.Duration  `json:"-"`
	MaxDuration        time.Duration  `json:"-"`
	AvgDuration        time.Duration  `json:"-"`
	P95Duration        time.Duration  `json:"-"`
	RequestsPerSecond  float64        `json:"requestsPerSecond"`
	TotalBytes         int64          `json:"totalBytes"`
	BytesPerSecond     float64        `json:"bytesPerSecond"`
	StatusCodes        map[int]int    `json:"statusCodes"`
	Endpoints          map[string]int `json:"endpoints"`
}

// matter mirrors the request body of POST /v1/kostennote
type matter struct {
	Context  map[string]interface{}   `json:"context"`
	Services []map[string]interface{} `json:"services"`
}

var (
	civilPosts     = []string{"TP1", "TP2", "TP3A", "TP3B", "TP3C", "TP5", "TP7", "TP8"}
	criminalTypes  = []string{"hearing", "brief", "appeal", "nullity_plea"}
	detentionTypes = []string{"hearing", "complaint", "visit"}
	adminTypes     = []string{"hearing", "statement", "complaint", "revision"}
	courtTypes     = []string{"BG", "ER", "SG", "GG"}
	adminCourts    = []string{"BEH", "VWG", "VWGH"}
)

func main() {
	host := flag.String("host", "http://localhost:8080", "Host URL of the Kostennote service")
	numRequests := flag.Int("n", 100, "Total number of requests to send")
	concurrency := flag.Int("c", 10, "Number of concurrent requests")
	batchPercent := flag.Int("batch", 20, "Percentage of batch requests (versus single matters)")
	batchSize := flag.Int("batch-size", 10, "Matters per batch request")
	maxServices := flag.Int("services", 8, "Maximum services per matter")
	minBasis := flag.Int64("min-basis", 100000, "Minimum civil basis in cents")
	maxBasis := flag.Int64("max-basis", 50000000, "Maximum civil basis in cents")
	verbose := flag.Bool("v", false, "Verbose output")
	outputFormat := flag.String("o", "text", "Output format: text or json")

	flag.Parse()

	config := Config{
		Host:         *host,
		NumRequests:  *numRequests,
		Concurrency:  *concurrency,
		BatchPercent: *batchPercent,
		BatchSize:    *batchSize,
		MaxServices:  *maxServices,
		MinBasis:     *minBasis,
		MaxBasis:     *maxBasis,
		Verbose:      *verbose,
		OutputFormat: *outputFormat,
	}

	fmt.Fprintf(os.Stderr, "Starting benchmark against %s\n", config.Host)
	fmt.Fprintf(os.Stderr, "Sending %d requests (%d%% batch of %d) with %d concurrent workers\n",
		config.NumRequests, config.BatchPercent, config.BatchSize, config.Concurrency)

	results := runBenchmark(config)

	if config.OutputFormat == "json" {
		outputJSON(results)
	} else {
		outputText(results)
	}
}

func runBenchmark(config Config) BenchmarkResults {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	batchCount := (config.NumRequests * config.BatchPercent) / 100

	// Bodies are built up front so the timing covers the service only
	type job struct {
		endpoint string
		body     []byte
	}
	jobs := make([]job, config.NumRequests)
	for i := range jobs {
		if i < batchCount {
			matters := make([]matter, config.BatchSize)
			for j := range matters {
				matters[j] = randomMatter(r, config)
			}
			jobs[i] = job{endpoint: "/v1/kostennote/batch", body: mustMarshal(matters)}
		} else {
			jobs[i] = job{endpoint: "/v1/kostennote?grouped=true", body: mustMarshal(randomMatter(r, config))}
		}
	}
	r.Shuffle(len(jobs), func(i, j int) { jobs[i], jobs[j] = jobs[j], jobs[i] })

	client := &http.Client{Timeout: 30 * time.Second}
	var (
		mu      sync.Mutex
		results = make([]RequestResult, 0, len(jobs))
	)

	p := pool.New().WithMaxGoroutines(max(config.Concurrency, 1))
	startTime := time.Now()
	for _, j := range jobs {
		p.Go(func() {
			result := post(client, config.Host+j.endpoint, j.body)
			result.Endpoint = j.endpoint
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
	}
	p.Wait()
	totalDuration := time.Since(startTime)

	return summarise(config, results, totalDuration)
}

func post(client *http.Client, url string, body []byte) RequestResult {
	start := time.Now()
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	result := RequestResult{Duration: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	n, _ := io.Copy(io.Discard, resp.Body)
	result.ContentSize = n
	return result
}

func summarise(config Config, results []RequestResult, totalDuration time.Duration) BenchmarkResults {
	summary := BenchmarkResults{
		TotalRequests: len(results),
		TotalDuration: totalDuration,
		StatusCodes:   make(map[int]int),
		Endpoints:     make(map[string]int),
	}
	if len(results) == 0 {
		return summary
	}

	durations := make([]time.Duration, 0, len(results))
	var sum time.Duration
	for _, result := range results {
		if result.Error == nil && result.StatusCode >= 200 && result.StatusCode < 400 {
			summary.SuccessfulRequests++
		} else {
			summary.FailedRequests++
		}
		sum += result.Duration
		durations = append(durations, result.Duration)
		summary.TotalBytes += result.ContentSize
		summary.StatusCodes[result.StatusCode]++
		summary.Endpoints[result.Endpoint]++

		if config.Verbose {
			if result.Error != nil {
				fmt.Fprintf(os.Stderr, "%s error: %s (%s)\n", result.Endpoint, result.Error, result.Duration)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %d status (%s)\n", result.Endpoint, result.StatusCode, result.Duration)
			}
		}
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	summary.MinDuration = durations[0]
	summary.MaxDuration = durations[len(durations)-1]
	summary.P95Duration = durations[(len(durations)*95+99)/100-1]
	summary.AvgDuration = sum / time.Duration(len(durations))
	summary.RequestsPerSecond = float64(summary.TotalRequests) / totalDuration.Seconds()
	summary.BytesPerSecond = float64(summary.TotalBytes) / totalDuration.Seconds()
	return summary
}

// randomMatter builds a plausible matter of a random domain
func randomMatter(r *rand.Rand, config Config) matter {
	n := r.Intn(max(config.MaxServices, 1)) + 1
	date := time.Now().AddDate(0, 0, -r.Intn(3650)).Format("2006-01-02")

	m := matter{Services: make([]map[string]interface{}, n)}
	switch r.Intn(4) {
	case 0:
		m.Context = map[string]interface{}{
			"mode":              "civil",
			"basisCents":        config.MinBasis + r.Int63n(max(config.MaxBasis-config.MinBasis, 1)),
			"additionalParties": r.Intn(10),
			"courtFeeEnabled":   true,
		}
		for i := range m.Services {
			m.Services[i] = map[string]interface{}{
				"post":                civilPosts[r.Intn(len(civilPosts))],
				"durationHalfHours":   r.Intn(8) + 1,
				"esMultiplier":        r.Intn(5),
				"includeErvSurcharge": r.Intn(2) == 0,
			}
		}
	case 1:
		m.Context = criminalContext(r, "criminal", courtTypes)
		fillTyped(r, m.Services, criminalTypes)
	case 2:
		m.Context = criminalContext(r, "detention", courtTypes)
		fillTyped(r, m.Services, detentionTypes)
	default:
		m.Context = criminalContext(r, "admin_penal", adminCourts)
		fillTyped(r, m.Services, adminTypes)
	}

	for i := range m.Services {
		m.Services[i]["id"] = uuid.NewString()
		m.Services[i]["date"] = date
	}
	return m
}

func criminalContext(r *rand.Rand, mode string, courts []string) map[string]interface{} {
	return map[string]interface{}{
		"mode":              mode,
		"courtType":         courts[r.Intn(len(courts))],
		"successPercent":    r.Intn(51),
		"additionalParties": r.Intn(4),
	}
}

func fillTyped(r *rand.Rand, services []map[string]interface{}, types []string) {
	for i := range services {
		services[i] = map[string]interface{}{
			"type":              types[r.Intn(len(types))],
			"durationHalfHours": r.Intn(12) + 1,
			"waitingHalfHours":  r.Intn(3),
			"esMultiplier":      r.Intn(3),
			"frustrated":        r.Intn(10) == 0,
		}
	}
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func outputText(results BenchmarkResults) {
	total := float64(max(results.TotalRequests, 1))
	fmt.Println("\n--- Benchmark Results ---")
	fmt.Printf("Total Requests:       %d\n", results.TotalRequests)
	fmt.Printf("Successful Requests:  %d (%.1f%%)\n", results.SuccessfulRequests, float64(results.SuccessfulRequests)*100/total)
	fmt.Printf("Failed Requests:      %d (%.1f%%)\n", results.FailedRequests, float64(results.FailedRequests)*100/total)
	fmt.Printf("Total Duration:       %s\n", results.TotalDuration)
	fmt.Printf("Average Response:     %s\n", results.AvgDuration)
	fmt.Printf("Min Response:         %s\n", results.MinDuration)
	fmt.Printf("P95 Response:         %s\n", results.P95Duration)
	fmt.Printf("Max Response:         %s\n", results.MaxDuration)
	fmt.Printf("Requests Per Second:  %.2f\n", results.RequestsPerSecond)
	fmt.Printf("Transfer:             %.2f KB\n", float64(results.TotalBytes)/1024)
	fmt.Printf("Bandwidth:            %.2f KB/s\n", results.BytesPerSecond/1024)

	fmt.Println("\nEndpoints:")
	for endpoint, count := range results.Endpoints {
		fmt.Printf("  %-32s %d\n", endpoint, count)
	}
	fmt.Println("\nResponse Status Codes:")
	for code, count := range results.StatusCodes {
		fmt.Printf("  HTTP %d:  %d (%.1f%%)\n", code, count, float64(count)*100/total)
	}
}

func outputJSON(results BenchmarkResults) {
	out := struct {
		BenchmarkResults
		TotalDurationMs int64   `json:"totalDurationMs"`
		AvgDurationMs   float64 `json:"avgDurationMs"`
		MinDurationMs   float64 `json:"minDurationMs"`
		P95DurationMs   float64 `json:"p95DurationMs"`
		MaxDurationMs   float64 `json:"maxDurationMs"`
	}{
		BenchmarkResults: results,
		TotalDurationMs:  results.TotalDuration.Milliseconds(),
		AvgDurationMs:    float64(results.AvgDuration.Microseconds()) / 1000,
		MinDurationMs:    float64(results.MinDuration.Microseconds()) / 1000,
		P95DurationMs:    float64(results.P95Duration.Microseconds()) / 1000,
		MaxDurationMs:    float64(results.MaxDuration.Microseconds()) / 1000,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding results: %v\n", err)
	}
}
