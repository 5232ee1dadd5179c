package usecase

import (
	"math"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

// priceTolerance is the largest accepted gap between a submitted total and
// the computed one.
const priceTolerance = 0.01

// Pricer derives fares from the adult base price.
type Pricer struct {
	childMultiplier  float64
	infantMultiplier float64
	guestsPerRoom    int
}

func NewPricer(config utils.BookingConfig) Pricer {
	guests := config.GuestsPerRoom
	if guests < 1 {
		guests = 2
	}
	return Pricer{
		childMultiplier:  config.ChildMultiplier,
		infantMultiplier: config.InfantMultiplier,
		guestsPerRoom:    guests,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (p Pricer) Multiplier(category entity.Category) float64 {
	switch category {
	case entity.CategoryChild:
		return p.childMultiplier
	case entity.CategoryInfant:
		return p.infantMultiplier
	default:
		return 1
	}
}

// Fare is the ticket price for one passenger.
func (p Pricer) Fare(base float64, category entity.Category) float64 {
	return round2(base * p.Multiplier(category))
}

// PartyTotal sums the fares of a party, each fare rounded on its own.
func (p Pricer) PartyTotal(base float64, adults, children, infants int) float64 {
	total := float64(adults)*p.Fare(base, entity.CategoryAdult) +
		float64(children)*p.Fare(base, entity.CategoryChild) +
		float64(infants)*p.Fare(base, entity.CategoryInfant)
	return round2(total)
}

// RoomsNeeded is the minimum room count; infants share a room.
func (p Pricer) RoomsNeeded(adults, children int) int {
	guests := adults + children
	if guests <= 0 {
		return 1
	}
	return (guests + p.guestsPerRoom - 1) / p.guestsPerRoom
}

func (p Pricer) HotelTotal(pricePerNight float64, rooms, nights int) float64 {
	return round2(pricePerNight * float64(rooms) * float64(nights))
}

func pricesMatch(submitted, computed float64) bool {
	return math.Abs(submitted-computed) <= priceTolerance
}
