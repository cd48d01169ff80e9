package texture

// The generated texture set mirrors the pack's expected inventory: every
// name here gets a placeholder so the addon renders without magenta checkers
// while real art is still missing.

// BlockTextures are written under blocks/.
var BlockTextures = []string{
	// generators
	"generator_front", "generator_front_active", "generator_side", "generator_top",
	"geothermal_generator_front", "geothermal_generator_front_active", "geothermal_generator_side", "geothermal_generator_top",
	"solar_panel_top", "solar_panel_side", "solar_panel_bottom",
	"wind_mill_rotor", "wind_mill_side", "wind_mill_top",

	// machines
	"macerator_front", "macerator_front_active", "macerator_side", "macerator_top",
	"electric_furnace_front", "electric_furnace_front_active", "electric_furnace_side", "electric_furnace_top",
	"compressor_front", "compressor_front_active", "compressor_side", "compressor_top",
	"extractor_front", "extractor_front_active", "extractor_side", "extractor_top",
	"recycler_front", "recycler_front_active", "recycler_side", "recycler_top",
	"nuclear_reactor_front", "nuclear_reactor_front_active", "nuclear_reactor_side", "nuclear_reactor_top",
	"machine_case",

	// cables
	"tin_cable", "tin_cable_insulated",
	"copper_cable", "copper_cable_insulated",
	"gold_cable", "gold_cable_insulated_1x", "gold_cable_insulated_2x",
	"iron_cable", "iron_cable_insulated_1x", "iron_cable_insulated_2x", "iron_cable_insulated_3x",
	"glass_fibre_cable",

	// ores
	"copper_ore", "tin_ore", "lead_ore", "uranium_ore",

	// rubber trees
	"rubber_wood", "rubber_wood_top", "rubber_wood_resin_wet", "rubber_wood_resin_dry",
	"rubber_leaves", "rubber_sapling",
}

// ItemTextures are written under items/.
var ItemTextures = []string{
	// dusts
	"copper_dust", "tin_dust", "lead_dust", "uranium_dust", "coal_dust",

	// ingots
	"copper_ingot", "tin_ingot", "lead_ingot", "bronze_ingot",

	// crushed ores
	"crushed_copper_ore", "crushed_tin_ore", "crushed_lead_ore", "crushed_iron_ore", "crushed_gold_ore",

	// components
	"rubber", "sticky_resin", "electronic_circuit", "advanced_circuit",
	"battery", "machine_case", "iron_plate", "copper_plate", "tin_plate", "scrap",

	// tools
	"treetap", "wrench",

	// reactor parts
	"uranium_cell", "depleted_uranium_cell",
	"heat_vent", "reactor_heat_vent", "overclocked_heat_vent",
	"component_heat_exchanger", "coolant_cell",

	// armor
	"nanosuit_helmet", "nanosuit_chestplate", "nanosuit_leggings", "nanosuit_boots",
	"quantumsuit_helmet", "quantumsuit_chestplate", "quantumsuit_leggings", "quantumsuit_boots",
}

// UITextures are written under ui/.
var UITextures = []string{
	"energy_bar_empty", "energy_bar_full",
	"progress_arrow_empty", "progress_arrow_full",
	"slot_input", "slot_output", "slot_fuel", "slot_battery", "slot_reactor",
}
