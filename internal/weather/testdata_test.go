package weather

// londonPayload is a trimmed real response from the current weather endpoint
// in standard units.
const londonPayload = `{
  "coord": {"lon": -0.1257, "lat": 51.5085},
  "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
  "main": {"temp": 288.71, "feels_like": 288.32, "temp_min": 287.6, "temp_max": 289.8, "pressure": 1012, "humidity": 78},
  "wind": {"speed": 4.63, "deg": 240},
  "dt": 1717430400,
  "sys": {"country": "GB", "sunrise": 1717386300, "sunset": 1717445700},
  "timezone": 3600,
  "name": "London"
}`
