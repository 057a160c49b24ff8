package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"weather-pulse/internal/domain/gateway/api"
	"weather-pulse/internal/domain/usecase/forecast"
	"weather-pulse/internal/domain/usecase/insight"
)

func main() {
	// Remember to set API_KEY, otherwise the fallback text is printed
	location := "Lisbon, PT"
	if len(os.Args) > 1 {
		location = os.Args[1]
	}

	gateway := api.NewGeminiGateway(api.GeminiOptions{
		APIKey:  os.Getenv("API_KEY"),
		Timeout: 20 * time.Second,
	})
	useCase := insight.NewInsightUseCase(gateway, nil)
	snapshot := forecast.NewForecastUseCase(nil, nil).Generate(location)

	fmt.Println("Prompt:")
	fmt.Println(insight.BuildPrompt(snapshot))
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	fmt.Println("Insight:", useCase.Advise(ctx, snapshot))
	fmt.Println("Circuit:", gateway.BreakerState())
}
