package database

import "github.com/campuscache/campuscache/internal/models"

// campusCaches are the campus landmark fixtures loaded by the seed tool.
var campusCaches = []models.Cache{
	{Title: "Alma Mater Statue", Description: "Find the iconic Alma Mater statue at the heart of campus.", Latitude: 40.1081, Longitude: -88.2272, Difficulty: 1, Category: "landmark"},
	{Title: "Foellinger Auditorium", Description: "Historic auditorium on the Main Quad.", Latitude: 40.1075, Longitude: -88.2275, Difficulty: 2, Category: "building"},
	{Title: "Altgeld Hall", Description: "The iconic bell tower building, home to mathematics.", Latitude: 40.1085, Longitude: -88.2280, Difficulty: 2, Category: "building"},
	{Title: "Illini Union", Description: "The student union building. Look near the main entrance.", Latitude: 40.1078, Longitude: -88.2265, Difficulty: 1, Category: "building"},
	{Title: "Engineering Quad", Description: "Look near the center fountain.", Latitude: 40.1120, Longitude: -88.2280, Difficulty: 2, Category: "campus"},
	{Title: "Grainger Library", Description: "The engineering library. Cache near the main entrance.", Latitude: 40.1125, Longitude: -88.2285, Difficulty: 1, Category: "building"},
	{Title: "Memorial Stadium", Description: "The football stadium. Cache near the main entrance.", Latitude: 40.1020, Longitude: -88.2350, Difficulty: 1, Category: "sports"},
	{Title: "State Farm Center", Description: "Check the north side of the building.", Latitude: 40.1030, Longitude: -88.2340, Difficulty: 2, Category: "sports"},
	{Title: "Siebel Center", Description: "The computer science building, west side entrance.", Latitude: 40.1135, Longitude: -88.2265, Difficulty: 2, Category: "building"},
	{Title: "Main Library", Description: "Look for the cache near the south entrance.", Latitude: 40.1090, Longitude: -88.2285, Difficulty: 1, Category: "building"},
	{Title: "Japan House", Description: "The Japan House and gardens, a peaceful spot on campus.", Latitude: 40.1050, Longitude: -88.2200, Difficulty: 2, Category: "landmark"},
	{Title: "Meadowbrook Park", Description: "A park near campus. Cache near the entrance.", Latitude: 40.0950, Longitude: -88.2400, Difficulty: 2, Category: "nature"},
}
