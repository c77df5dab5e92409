package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type GameRecord struct {
	Episode int
	GameMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the output of one run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"episode", "starting_player", "winner", "moves", "start_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Episode),
			strconv.Itoa(int(record.StartingPlayer)),
			strconv.Itoa(int(record.Winner)),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"first_episode", "last_episode", "win_rate_one", "win_rate_two", "draw_rate", "mean_moves", "stddev_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			strconv.Itoa(s.FirstEpisode),
			strconv.Itoa(s.LastEpisode),
			strconv.FormatFloat(s.WinRateOne, 'f', 4, 64),
			strconv.FormatFloat(s.WinRateTwo, 'f', 4, 64),
			strconv.FormatFloat(s.DrawRate, 'f', 4, 64),
			strconv.FormatFloat(s.MeanMoves, 'f', 4, 64),
			strconv.FormatFloat(s.StdDevMoves, 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}

// WriteLearningCurve renders win and draw rates per window as an HTML line chart.
func (w *Writer) WriteLearningCurve(summaries []Summary) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "self-play outcomes",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	episodes := make([]string, 0, len(summaries))
	ones := make([]opts.LineData, 0, len(summaries))
	twos := make([]opts.LineData, 0, len(summaries))
	draws := make([]opts.LineData, 0, len(summaries))
	for _, s := range summaries {
		episodes = append(episodes, strconv.Itoa(s.LastEpisode))
		ones = append(ones, opts.LineData{Value: s.WinRateOne})
		twos = append(twos, opts.LineData{Value: s.WinRateTwo})
		draws = append(draws, opts.LineData{Value: s.DrawRate})
	}
	line.SetXAxis(episodes).
		AddSeries("player one wins", ones).
		AddSeries("player two wins", twos).
		AddSeries("draws", draws)

	page := components.NewPage()
	page.AddCharts(line)

	path := filepath.Join(w.baseDir, "learning_curve.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create learning curve file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render learning curve: %w", err)
	}
	return nil
}
