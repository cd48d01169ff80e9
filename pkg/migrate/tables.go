package migrate

// BlockMappings is the curated table for block textures. Order matters and
// duplicate sources are intentional: the plain ore textures also stand in for
// their deepslate variants until dedicated ones exist.
func BlockMappings() []Entry {
	return []Entry{
		// generators
		{"blocks/generator/electric/generator_front.png", "blocks/generator/generator.png", "generator"},
		{"blocks/generator/electric/geo_generator_front.png", "blocks/generator/geo_generator.png", "generator"},
		{"blocks/generator/electric/solar_generator_top.png", "blocks/generator/solar.png", "generator"},
		{"blocks/generator/electric/wind_generator_front.png", "blocks/generator/wind.png", "generator"},
		{"blocks/generator/electric/water_generator_front.png", "blocks/generator/water.png", "generator"},

		// processing machines
		{"blocks/machine/processing/basic/macerator_front_active.png", "blocks/machine/macerator_front.png", "machine"},
		{"blocks/machine/processing/basic/compressor_front_active.png", "blocks/machine/compressor_front.png", "machine"},
		{"blocks/machine/processing/basic/extractor_front_active.png", "blocks/machine/extractor_front.png", "machine"},
		{"blocks/machine/processing/basic/recycler_front.png", "blocks/machine/recycler_front.png", "machine"},

		// shared machine faces
		{"blocks/machine.png", "blocks/general/machine/sides.png", "machine-face"},
		{"blocks/machine_top.png", "blocks/general/machine/top.png", "machine-face"},
		{"blocks/machine_bottom.png", "blocks/general/machine/bottom.png", "machine-face"},

		// ores
		{"blocks/resource/tin_ore.png", "blocks/ore/tin_ore.png", "ore"},
		{"blocks/resource/lead_ore.png", "blocks/ore/lead_ore.png", "ore"},
		{"blocks/resource/uranium_ore.png", "blocks/ore/uranium_ore.png", "ore"},
		{"blocks/resource/copper_ore.png", "blocks/ore/copper_ore.png", "ore"},

		// deepslate ores reuse the plain textures until dedicated ones exist
		{"blocks/resource/tin_ore.png", "blocks/ore/deepslate_tin_ore.png", "ore"},
		{"blocks/resource/lead_ore.png", "blocks/ore/deepslate_lead_ore.png", "ore"},
		{"blocks/resource/uranium_ore.png", "blocks/ore/deepslate_uranium_ore.png", "ore"},

		// ingot blocks
		{"blocks/resource/tin_block.png", "blocks/ore/ingot_block/tin_block.png", "ingot-block"},
		{"blocks/resource/lead_block.png", "blocks/ore/ingot_block/lead_block.png", "ingot-block"},
		{"blocks/resource/bronze_block.png", "blocks/ore/ingot_block/bronze_block.png", "ingot-block"},
		{"blocks/resource/steel_block.png", "blocks/ore/ingot_block/steel_block.png", "ingot-block"},
		{"blocks/resource/uranium_block.png", "blocks/ore/ingot_block/uranium_bottomtop.png", "ingot-block"},
	}
}

// ItemMappings is the curated table for item textures: electric tools and the
// nano/quantum armor sets.
func ItemMappings() []Entry {
	return []Entry{
		{"items/tool/electric/drill.png", "items/tool/general/drill.png", "tool"},
		{"items/tool/electric/diamond_drill.png", "items/tool/general/diamond_drill.png", "tool"},
		{"items/tool/electric/chainsaw.png", "items/tool/general/chainsaw.png", "tool"},
		{"items/tool/electric/electric_wrench.png", "items/tool/general/electric_wrench.png", "tool"},

		{"items/armor/nano_helmet.png", "items/armor/nanosuit_helmet.png", "armor"},
		{"items/armor/nano_chestplate.png", "items/armor/nanosuit_chestplate.png", "armor"},
		{"items/armor/nano_leggings.png", "items/armor/nanosuit_leggings.png", "armor"},
		{"items/armor/nano_boots.png", "items/armor/nanosuit_boots.png", "armor"},
		{"items/armor/quantum_helmet.png", "items/armor/quantumsuit_helmet.png", "armor"},
		{"items/armor/quantum_chestplate.png", "items/armor/quantumsuit_chestplate.png", "armor"},
		{"items/armor/quantum_leggings.png", "items/armor/quantumsuit_leggings.png", "armor"},
		{"items/armor/quantum_boots.png", "items/armor/quantumsuit_boots.png", "armor"},
	}
}

// DefaultMappings returns the combined curated table, blocks first.
func DefaultMappings() []Entry {
	entries := BlockMappings()
	return append(entries, ItemMappings()...)
}
